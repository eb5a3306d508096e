package expr

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"
)

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Strings(),
		ext.Lists(),

		cel.Variable(VarTitle, cel.StringType),
		cel.Variable(VarOrganization, cel.StringType),
		cel.Variable(VarText, cel.StringType),

		// `hasWord` reports whether the word occurs in the text on word boundaries.
		// Example: hasWord(text, "apprentice").
		cel.Function("hasWord",
			cel.Overload("has_word_string_string", []*cel.Type{cel.StringType, cel.StringType}, cel.BoolType,
				cel.BinaryBinding(func(text, word ref.Val) ref.Val {
					textValue, ok := text.(types.String).Value().(string)
					if !ok {
						return types.NewErr("hasWord: invalid text value")
					}

					wordValue, ok := word.(types.String).Value().(string)
					if !ok {
						return types.NewErr("hasWord: invalid word value")
					}

					return types.Bool(ContainsWord(textValue, wordValue))
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return []cel.ProgramOption{}
}

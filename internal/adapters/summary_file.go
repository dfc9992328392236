package adapters

import (
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"grml-changelog/internal/types"
)

func MarshalSummary(summary types.ChangelogSummary) ([]byte, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode changelog summary").
			WithCause(err)
	}
	return data, nil
}

// EncodeSummary writes summary as YAML to w.
func EncodeSummary(w io.Writer, summary types.ChangelogSummary) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode changelog summary").
			WithCause(err)
	}
	return encoder.Close()
}

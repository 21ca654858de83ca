package ds

import (
	"fmt"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	CopyString:  true,
}.Froze()

func Marshal(v any) ([]byte, error) { return api.Marshal(v) }

func Unmarshal(data []byte, v any) error { return api.Unmarshal(data, v) }

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

func DumpJSON[T any](t T) string {
	tBytes, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}

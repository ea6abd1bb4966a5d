package nn

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"
)

// Info is a layer's diagnostic summary.
// Values are numbers, strings or booleans.
type Info map[string]any

// Keys returns the keys in sorted order.
func (i Info) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Proto converts the summary to a protobuf Struct, for consumers that speak
// protobuf rather than Go.
func (i Info) Proto() (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any(i))
	if err != nil {
		return nil, fmt.Errorf("info to proto: %w", err)
	}
	return s, nil
}

// Summarize returns the Info of every layer with its type added under the
// "type" key.
func Summarize(layers []Layer) []Info {
	infos := make([]Info, len(layers))
	for i, l := range layers {
		info := Info{"type": l.Type()}
		for k, v := range l.Info() {
			info[k] = v
		}
		infos[i] = info
	}
	return infos
}

package entity

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes each filter as a mapping led by its kind tag.
func (list FilterList) MarshalYAML() (any, error) {

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, f := range list {
		node, err := encodeNode(f)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, node)
	}
	return seq, nil
}

// UnmarshalYAML decodes a sequence of kind-tagged filters, normalizing each.
func (list *FilterList) UnmarshalYAML(value *yaml.Node) error {

	if value.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: filters must be a sequence", value.Line)
	}

	decoded := make(FilterList, 0, len(value.Content))
	for _, node := range value.Content {
		f, err := decodeNode(node)
		if err != nil {
			return err
		}
		decoded = append(decoded, f)
	}

	*list = decoded
	return nil
}

// MarshalFilter encodes a single filter, kind tag included.
func MarshalFilter(f Filter) (data []byte, err error) {

	node, err := encodeNode(f)
	if err != nil {
		return
	}

	data, err = yaml.Marshal(node)
	err = errors.Wrapf(err, "failed to marshal %s filter", f.Kind())
	return
}

// UnmarshalFilter decodes a single kind-tagged filter.
func UnmarshalFilter(data []byte) (f Filter, err error) {

	var doc yaml.Node
	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal filter")
		return
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		err = errors.Errorf("empty filter document")
		return
	}

	return decodeNode(doc.Content[0])
}

// New returns an empty filter of the given kind.
func New(kind Kind) (Filter, error) {
	switch kind {
	case KindText:
		return &TextFilter{}, nil
	case KindToggle:
		return &ToggleFilter{}, nil
	case KindSegment:
		return &SegmentFilter{}, nil
	case KindSelect:
		return &SelectFilter{}, nil
	case KindExcludableSelect:
		return &ExcludableSelectFilter{}, nil
	case KindMultiSelect:
		return &MultiSelectFilter{}, nil
	case KindExcludableMultiSelect:
		return &ExcludableMultiSelectFilter{}, nil
	case KindSort:
		return &SortFilter{}, nil
	case KindAscendableSort:
		return &AscendableSortFilter{}, nil
	case KindNumber:
		return &NumberFilter{}, nil
	}
	return nil, errors.Errorf("unknown filter kind %q", kind)
}

// Normalize brings a filter's value into line with its variant's invariants.
func Normalize(f Filter) {
	f.Accept(normalizer{})
}

// unexported

func encodeNode(f Filter) (*yaml.Node, error) {

	var node yaml.Node
	err := node.Encode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s filter %q", f.Kind(), f.Label())
	}

	tag := []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "kind"},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(f.Kind())},
	}
	node.Content = append(tag, node.Content...)
	return &node, nil
}

func decodeNode(node *yaml.Node) (Filter, error) {

	var head struct {
		Kind Kind `yaml:"kind"`
	}
	err := node.Decode(&head)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: failed to decode filter kind", node.Line)
	}

	f, err := New(head.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", node.Line)
	}

	err = node.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: failed to decode %s filter", node.Line, head.Kind)
	}

	Normalize(f)
	return f, nil
}

type normalizer struct{}

func (normalizer) VisitText(f *TextFilter)     {}
func (normalizer) VisitToggle(f *ToggleFilter) {}

func (normalizer) VisitSegment(f *SegmentFilter) {
	f.Normalize()
}

func (normalizer) VisitSelect(f *SelectFilter) {
	normalizeSelect(f.Options, false, false)
}

func (normalizer) VisitExcludableSelect(f *ExcludableSelectFilter) {
	normalizeSelect(f.Options, true, false)
}

func (normalizer) VisitMultiSelect(f *MultiSelectFilter) {
	normalizeSelect(f.Options, false, true)
}

func (normalizer) VisitExcludableMultiSelect(f *ExcludableMultiSelectFilter) {
	normalizeSelect(f.Options, true, true)
}

func (normalizer) VisitSort(f *SortFilter) {
	normalizeSort(f.Options)
}

func (normalizer) VisitAscendableSort(f *AscendableSortFilter) {
	normalizeSort(f.Options)
}

func (normalizer) VisitNumber(f *NumberFilter) {
	f.Normalize()
}

// normalizeSelect keeps flags exclusive, drops exclusions where not allowed
// and keeps only the first marked option of a single choice.
func normalizeSelect(opts []SelectOption, tristate, multi bool) {

	marked := false
	for i := range opts {
		state := opts[i].State()
		if state == Excluded && !tristate {
			state = Unset
		}
		if state != Unset && !multi {
			if marked {
				state = Unset
			}
			marked = true
		}
		opts[i].SetState(state)
	}
}

// normalizeSort keeps only the first selected key.
func normalizeSort(opts []SortOption) {

	selected := false
	for i := range opts {
		if opts[i].Selected && selected {
			opts[i].Selected = false
		}
		selected = selected || opts[i].Selected
	}
}

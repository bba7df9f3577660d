package entity

import "slices"

func (f *TextFilter) Clone() Filter {
	clone := *f
	return &clone
}

func (f *ToggleFilter) Clone() Filter {
	clone := *f
	return &clone
}

func (f *SegmentFilter) Clone() Filter {
	return &SegmentFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *SelectFilter) Clone() Filter {
	return &SelectFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *ExcludableSelectFilter) Clone() Filter {
	return &ExcludableSelectFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *MultiSelectFilter) Clone() Filter {
	return &MultiSelectFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *ExcludableMultiSelectFilter) Clone() Filter {
	return &ExcludableMultiSelectFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *SortFilter) Clone() Filter {
	return &SortFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *AscendableSortFilter) Clone() Filter {
	return &AscendableSortFilter{Name: f.Name, Options: slices.Clone(f.Options)}
}

func (f *NumberFilter) Clone() Filter {
	clone := *f
	return &clone
}

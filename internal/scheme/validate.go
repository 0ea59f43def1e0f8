package scheme

import "fmt"

// MalformedError describes a dataset that breaks a structural invariant.
type MalformedError struct {
	Scheme string // scheme name, if known
	Field  string // offending field, e.g. "datasets[1].data"
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Scheme != "" {
		return fmt.Sprintf("malformed dataset %q: %s: %s", e.Scheme, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed dataset: %s: %s", e.Field, e.Reason)
}

// Validate checks d and returns every violation found. A nil result means the
// dataset is well formed.
func Validate(d Dataset) []error {
	var errs []error

	if d.TotalBeneficiaries < 0 {
		errs = append(errs, &MalformedError{
			Scheme: d.SchemeName,
			Field:  "totalBeneficiaries",
			Reason: fmt.Sprintf("must be non-negative, got %d", d.TotalBeneficiaries),
		})
	}

	seen := make(map[string]bool, len(d.Labels))
	for i, l := range d.Labels {
		if seen[l] {
			errs = append(errs, &MalformedError{
				Scheme: d.SchemeName,
				Field:  fmt.Sprintf("labels[%d]", i),
				Reason: fmt.Sprintf("duplicate label %q", l),
			})
		}
		seen[l] = true
	}

	for i, s := range d.Datasets {
		if len(s.Data) != len(d.Labels) {
			errs = append(errs, &MalformedError{
				Scheme: d.SchemeName,
				Field:  fmt.Sprintf("datasets[%d].data", i),
				Reason: fmt.Sprintf("has %d values for %d labels", len(s.Data), len(d.Labels)),
			})
		}
	}

	return errs
}

// Normalize returns a copy of d in which every series has exactly one value
// per label: longer series are truncated and shorter ones padded with zeros.
// The returned errors describe each repair, including a fractional total
// rounded while decoding. d itself is not modified.
func Normalize(d Dataset) (Dataset, []error) {
	out := d.Clone()
	var errs []error
	if d.roundedFrom != "" {
		errs = append(errs, &MalformedError{
			Scheme: d.SchemeName,
			Field:  "totalBeneficiaries",
			Reason: fmt.Sprintf("rounded %s to %d", d.roundedFrom, d.TotalBeneficiaries),
		})
	}
	n := len(out.Labels)
	for i := range out.Datasets {
		s := &out.Datasets[i]
		switch {
		case len(s.Data) > n:
			errs = append(errs, &MalformedError{
				Scheme: d.SchemeName,
				Field:  fmt.Sprintf("datasets[%d].data", i),
				Reason: fmt.Sprintf("truncated %d values to %d labels", len(s.Data), n),
			})
			s.Data = s.Data[:n]
		case len(s.Data) < n:
			errs = append(errs, &MalformedError{
				Scheme: d.SchemeName,
				Field:  fmt.Sprintf("datasets[%d].data", i),
				Reason: fmt.Sprintf("padded %d values to %d labels", len(s.Data), n),
			})
			padded := make([]float64, n)
			copy(padded, s.Data)
			s.Data = padded
		}
	}
	return out, errs
}

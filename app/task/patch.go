package task

import "strings"

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Priority    *string
	DueDate     *string
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Priority == nil && p.DueDate == nil
}

// Apply returns t with the provided fields replaced. Each provided field is validated the same
// way as on add; on error t is returned unchanged along with the error.
func (p Patch) Apply(t Task) (Task, error) {
	res := t
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return t, ErrEmptyName
		}
		res.Name = name
	}
	if p.Description != nil {
		res.Description = *p.Description
	}
	if p.Priority != nil {
		prio, err := ValidatePriority(*p.Priority)
		if err != nil {
			return t, err
		}
		res.Priority = prio
	}
	if p.DueDate != nil {
		if err := ValidateDueDate(*p.DueDate); err != nil {
			return t, err
		}
		res.DueDate = *p.DueDate
	}
	return res, nil
}

// StrPtr is a helper returning pointer to s, handy for building a Patch
func StrPtr(s string) *string { return &s }

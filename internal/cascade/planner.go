// Package cascade deletes a parent row together with every dependent row, in
// a fixed leaves-first order, on a transaction handle supplied by the caller.
package cascade

import (
	"fmt"
	"log"

	"mediasocial/internal/common"

	"gorm.io/gorm"
)

// Step deletes the rows of Model matching Cond.
type Step struct {
	Name  string
	Model interface{}
	Cond  string
	Args  []interface{}
}

// Unlink clears Column on the rows of Model matching Cond. It is for optional
// references that must not dangle once the parent is gone.
type Unlink struct {
	Name   string
	Model  interface{}
	Column string
	Cond   string
	Args   []interface{}
}

// Plan is an ordered cascade ending with the parent row.
type Plan struct {
	Name string

	// Exists, when set, is checked first. No match means the parent does not
	// exist and the plan stops with common.ErrNotFound.
	Exists *Step

	// Unlinks run after the existence check and before any delete.
	Unlinks []Unlink

	Steps  []Step
	Parent Step

	// Guarded parents carry an ownership condition. A parent delete that
	// matches nothing is then reported as not found instead of a cascade failure.
	Guarded bool
}

// Result reports what a plan removed, keyed by step name.
type Result struct {
	Removed map[string]int64
}

// Run executes the plan on tx. It never commits or rolls back; a returned
// error is expected to abort the enclosing transaction.
func (p Plan) Run(tx *gorm.DB) (*Result, error) {
	res := &Result{Removed: make(map[string]int64, len(p.Steps)+1)}

	if p.Exists != nil {
		n, err := count(tx, *p.Exists)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fmt.Errorf("%s: %w", p.Name, common.ErrNotFound)
		}
	}

	for _, u := range p.Unlinks {
		if err := tx.Model(u.Model).Where(u.Cond, u.Args...).Update(u.Column, nil).Error; err != nil {
			return nil, fmt.Errorf("%s: failed to unlink %s: %w", p.Name, u.Name, err)
		}
	}

	for _, step := range p.Steps {
		expected, err := count(tx, step)
		if err != nil {
			return nil, err
		}
		if expected == 0 {
			continue
		}

		result := tx.Where(step.Cond, step.Args...).Delete(step.Model)
		if result.Error != nil {
			return nil, fmt.Errorf("%s: failed to delete %s: %w", p.Name, step.Name, result.Error)
		}
		if result.RowsAffected < expected {
			return nil, p.integrityFailure(tx, &common.CascadeError{
				Step:     step.Name,
				Expected: expected,
				Affected: result.RowsAffected,
			})
		}
		res.Removed[step.Name] = result.RowsAffected
	}

	result := tx.Where(p.Parent.Cond, p.Parent.Args...).Delete(p.Parent.Model)
	if result.Error != nil {
		return nil, fmt.Errorf("%s: failed to delete %s: %w", p.Name, p.Parent.Name, result.Error)
	}
	if result.RowsAffected == 0 {
		if p.Guarded || p.Exists == nil {
			return nil, fmt.Errorf("%s: %w", p.Name, common.ErrNotFound)
		}
		return nil, p.integrityFailure(tx, &common.CascadeError{Step: p.Parent.Name, Expected: 1})
	}
	res.Removed[p.Parent.Name] = result.RowsAffected

	return res, nil
}

func (p Plan) integrityFailure(tx *gorm.DB, ce *common.CascadeError) error {
	opID := "-"
	if tx.Statement != nil && tx.Statement.Context != nil {
		opID = common.OpID(tx.Statement.Context)
	}
	log.Printf("✗ op %s: %s stopped at %s: %d of %d rows", opID, p.Name, ce.Step, ce.Affected, ce.Expected)
	return fmt.Errorf("%s: %w", p.Name, ce)
}

func count(tx *gorm.DB, step Step) (int64, error) {
	var n int64
	if err := tx.Model(step.Model).Where(step.Cond, step.Args...).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", step.Name, err)
	}
	return n, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

// ProficiencyRecordDelete is the builder for deleting a ProficiencyRecord entity.
type ProficiencyRecordDelete struct {
	config
	hooks    []Hook
	mutation *ProficiencyRecordMutation
}

// Where appends a list predicates to the ProficiencyRecordDelete builder.
func (_d *ProficiencyRecordDelete) Where(ps ...predicate.ProficiencyRecord) *ProficiencyRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProficiencyRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencyRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProficiencyRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(proficiencyrecord.Table, sqlgraph.NewFieldSpec(proficiencyrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProficiencyRecordDeleteOne is the builder for deleting a single ProficiencyRecord entity.
type ProficiencyRecordDeleteOne struct {
	_d *ProficiencyRecordDelete
}

// Where appends a list predicates to the ProficiencyRecordDelete builder.
func (_d *ProficiencyRecordDeleteOne) Where(ps ...predicate.ProficiencyRecord) *ProficiencyRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProficiencyRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{proficiencyrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencyRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

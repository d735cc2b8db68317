// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// GrammarFeatureDelete is the builder for deleting a GrammarFeature entity.
type GrammarFeatureDelete struct {
	config
	hooks    []Hook
	mutation *GrammarFeatureMutation
}

// Where appends a list predicates to the GrammarFeatureDelete builder.
func (_d *GrammarFeatureDelete) Where(ps ...predicate.GrammarFeature) *GrammarFeatureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GrammarFeatureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GrammarFeatureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GrammarFeatureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(grammarfeature.Table, sqlgraph.NewFieldSpec(grammarfeature.FieldID, field.TypeInt))
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

// GrammarFeatureDeleteOne is the builder for deleting a single GrammarFeature entity.
type GrammarFeatureDeleteOne struct {
	_d *GrammarFeatureDelete
}

// Where appends a list predicates to the GrammarFeatureDelete builder.
func (_d *GrammarFeatureDeleteOne) Where(ps ...predicate.GrammarFeature) *GrammarFeatureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GrammarFeatureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{grammarfeature.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GrammarFeatureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

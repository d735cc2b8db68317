// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
)

// GrammarFeatureQuery is the builder for querying GrammarFeature entities.
type GrammarFeatureQuery struct {
	config
	ctx        *QueryContext
	order      []grammarfeature.OrderOption
	inters     []Interceptor
	predicates []predicate.GrammarFeature
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GrammarFeatureQuery builder.
func (_q *GrammarFeatureQuery) Where(ps ...predicate.GrammarFeature) *GrammarFeatureQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GrammarFeatureQuery) Limit(limit int) *GrammarFeatureQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GrammarFeatureQuery) Offset(offset int) *GrammarFeatureQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GrammarFeatureQuery) Unique(unique bool) *GrammarFeatureQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GrammarFeatureQuery) Order(o ...grammarfeature.OrderOption) *GrammarFeatureQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first GrammarFeature entity from the query.
// Returns a *NotFoundError when no GrammarFeature was found.
func (_q *GrammarFeatureQuery) First(ctx context.Context) (*GrammarFeature, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{grammarfeature.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GrammarFeatureQuery) FirstX(ctx context.Context) *GrammarFeature {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GrammarFeature ID from the query.
// Returns a *NotFoundError when no GrammarFeature ID was found.
func (_q *GrammarFeatureQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{grammarfeature.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GrammarFeatureQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GrammarFeature entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GrammarFeature entity is found.
// Returns a *NotFoundError when no GrammarFeature entities are found.
func (_q *GrammarFeatureQuery) Only(ctx context.Context) (*GrammarFeature, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{grammarfeature.Label}
	default:
		return nil, &NotSingularError{grammarfeature.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GrammarFeatureQuery) OnlyX(ctx context.Context) *GrammarFeature {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GrammarFeature ID in the query.
// Returns a *NotSingularError when more than one GrammarFeature ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GrammarFeatureQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{grammarfeature.Label}
	default:
		err = &NotSingularError{grammarfeature.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GrammarFeatureQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GrammarFeatures.
func (_q *GrammarFeatureQuery) All(ctx context.Context) ([]*GrammarFeature, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GrammarFeature, *GrammarFeatureQuery]()
	return withInterceptors[[]*GrammarFeature](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GrammarFeatureQuery) AllX(ctx context.Context) []*GrammarFeature {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GrammarFeature IDs.
func (_q *GrammarFeatureQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(grammarfeature.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GrammarFeatureQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GrammarFeatureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GrammarFeatureQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GrammarFeatureQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GrammarFeatureQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *GrammarFeatureQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GrammarFeatureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GrammarFeatureQuery) Clone() *GrammarFeatureQuery {
	if _q == nil {
		return nil
	}
	return &GrammarFeatureQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]grammarfeature.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.GrammarFeature{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FeatureKey string `json:"feature_key,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GrammarFeature.Query().
//		GroupBy(grammarfeature.FieldFeatureKey).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GrammarFeatureQuery) GroupBy(field string, fields ...string) *GrammarFeatureGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GrammarFeatureGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = grammarfeature.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FeatureKey string `json:"feature_key,omitempty"`
//	}
//
//	client.GrammarFeature.Query().
//		Select(grammarfeature.FieldFeatureKey).
//		Scan(ctx, &v)
func (_q *GrammarFeatureQuery) Select(fields ...string) *GrammarFeatureSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GrammarFeatureSelect{GrammarFeatureQuery: _q}
	sbuild.label = grammarfeature.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GrammarFeatureSelect configured with the given aggregations.
func (_q *GrammarFeatureQuery) Aggregate(fns ...AggregateFunc) *GrammarFeatureSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GrammarFeatureQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !grammarfeature.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *GrammarFeatureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GrammarFeature, error) {
	var (
		nodes = []*GrammarFeature{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GrammarFeature).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GrammarFeature{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *GrammarFeatureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GrammarFeatureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(grammarfeature.Table, grammarfeature.Columns, sqlgraph.NewFieldSpec(grammarfeature.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grammarfeature.FieldID)
		for i := range fields {
			if fields[i] != grammarfeature.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *GrammarFeatureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(grammarfeature.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = grammarfeature.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GrammarFeatureGroupBy is the group-by builder for GrammarFeature entities.
type GrammarFeatureGroupBy struct {
	selector
	build *GrammarFeatureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GrammarFeatureGroupBy) Aggregate(fns ...AggregateFunc) *GrammarFeatureGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GrammarFeatureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GrammarFeatureQuery, *GrammarFeatureGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GrammarFeatureGroupBy) sqlScan(ctx context.Context, root *GrammarFeatureQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GrammarFeatureSelect is the builder for selecting fields of GrammarFeature entities.
type GrammarFeatureSelect struct {
	*GrammarFeatureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GrammarFeatureSelect) Aggregate(fns ...AggregateFunc) *GrammarFeatureSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GrammarFeatureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GrammarFeatureQuery, *GrammarFeatureSelect](ctx, _s.GrammarFeatureQuery, _s, _s.inters, v)
}

func (_s *GrammarFeatureSelect) sqlScan(ctx context.Context, root *GrammarFeatureQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

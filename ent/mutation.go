// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lmdrew96/chaoslimba/ent/contentitem"
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/llmrequestevent"
	"github.com/lmdrew96/chaoslimba/ent/predicate"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContentItem       = "ContentItem"
	TypeErrorPattern      = "ErrorPattern"
	TypeExposureEvent     = "ExposureEvent"
	TypeGrammarFeature    = "GrammarFeature"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeProficiencyRecord = "ProficiencyRecord"
)

// ContentItemMutation represents an operation that mutates the ContentItem nodes in the graph.
type ContentItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	title              *string
	body               *string
	cefr_level         *string
	feature_keys       *[]string
	appendfeature_keys []string
	topics             *[]string
	appendtopics       []string
	modality           *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ContentItem, error)
	predicates         []predicate.ContentItem
}

var _ ent.Mutation = (*ContentItemMutation)(nil)

// contentitemOption allows management of the mutation configuration using functional options.
type contentitemOption func(*ContentItemMutation)

// newContentItemMutation creates new mutation for the ContentItem entity.
func newContentItemMutation(c config, op Op, opts ...contentitemOption) *ContentItemMutation {
	m := &ContentItemMutation{
		config:        c,
		op:            op,
		typ:           TypeContentItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentItemID sets the ID field of the mutation.
func withContentItemID(id int) contentitemOption {
	return func(m *ContentItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentItem
		)
		m.oldValue = func(ctx context.Context) (*ContentItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentItem sets the old ContentItem of the mutation.
func withContentItem(node *ContentItem) contentitemOption {
	return func(m *ContentItemMutation) {
		m.oldValue = func(context.Context) (*ContentItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ContentItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContentItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContentItemMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *ContentItemMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ContentItemMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ContentItemMutation) ResetBody() {
	m.body = nil
}

// SetCefrLevel sets the "cefr_level" field.
func (m *ContentItemMutation) SetCefrLevel(s string) {
	m.cefr_level = &s
}

// CefrLevel returns the value of the "cefr_level" field in the mutation.
func (m *ContentItemMutation) CefrLevel() (r string, exists bool) {
	v := m.cefr_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCefrLevel returns the old "cefr_level" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldCefrLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCefrLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCefrLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCefrLevel: %w", err)
	}
	return oldValue.CefrLevel, nil
}

// ResetCefrLevel resets all changes to the "cefr_level" field.
func (m *ContentItemMutation) ResetCefrLevel() {
	m.cefr_level = nil
}

// SetFeatureKeys sets the "feature_keys" field.
func (m *ContentItemMutation) SetFeatureKeys(s []string) {
	m.feature_keys = &s
	m.appendfeature_keys = nil
}

// FeatureKeys returns the value of the "feature_keys" field in the mutation.
func (m *ContentItemMutation) FeatureKeys() (r []string, exists bool) {
	v := m.feature_keys
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureKeys returns the old "feature_keys" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldFeatureKeys(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureKeys is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureKeys requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureKeys: %w", err)
	}
	return oldValue.FeatureKeys, nil
}

// AppendFeatureKeys adds s to the "feature_keys" field.
func (m *ContentItemMutation) AppendFeatureKeys(s []string) {
	m.appendfeature_keys = append(m.appendfeature_keys, s...)
}

// AppendedFeatureKeys returns the list of values that were appended to the "feature_keys" field in this mutation.
func (m *ContentItemMutation) AppendedFeatureKeys() ([]string, bool) {
	if len(m.appendfeature_keys) == 0 {
		return nil, false
	}
	return m.appendfeature_keys, true
}

// ResetFeatureKeys resets all changes to the "feature_keys" field.
func (m *ContentItemMutation) ResetFeatureKeys() {
	m.feature_keys = nil
	m.appendfeature_keys = nil
}

// SetTopics sets the "topics" field.
func (m *ContentItemMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *ContentItemMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *ContentItemMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *ContentItemMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *ContentItemMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[contentitem.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *ContentItemMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[contentitem.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *ContentItemMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, contentitem.FieldTopics)
}

// SetModality sets the "modality" field.
func (m *ContentItemMutation) SetModality(s string) {
	m.modality = &s
}

// Modality returns the value of the "modality" field in the mutation.
func (m *ContentItemMutation) Modality() (r string, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the ContentItem entity.
// If the ContentItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentItemMutation) OldModality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ResetModality resets all changes to the "modality" field.
func (m *ContentItemMutation) ResetModality() {
	m.modality = nil
}

// Where appends a list predicates to the ContentItemMutation builder.
func (m *ContentItemMutation) Where(ps ...predicate.ContentItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentItem).
func (m *ContentItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, contentitem.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, contentitem.FieldBody)
	}
	if m.cefr_level != nil {
		fields = append(fields, contentitem.FieldCefrLevel)
	}
	if m.feature_keys != nil {
		fields = append(fields, contentitem.FieldFeatureKeys)
	}
	if m.topics != nil {
		fields = append(fields, contentitem.FieldTopics)
	}
	if m.modality != nil {
		fields = append(fields, contentitem.FieldModality)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentitem.FieldTitle:
		return m.Title()
	case contentitem.FieldBody:
		return m.Body()
	case contentitem.FieldCefrLevel:
		return m.CefrLevel()
	case contentitem.FieldFeatureKeys:
		return m.FeatureKeys()
	case contentitem.FieldTopics:
		return m.Topics()
	case contentitem.FieldModality:
		return m.Modality()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentitem.FieldTitle:
		return m.OldTitle(ctx)
	case contentitem.FieldBody:
		return m.OldBody(ctx)
	case contentitem.FieldCefrLevel:
		return m.OldCefrLevel(ctx)
	case contentitem.FieldFeatureKeys:
		return m.OldFeatureKeys(ctx)
	case contentitem.FieldTopics:
		return m.OldTopics(ctx)
	case contentitem.FieldModality:
		return m.OldModality(ctx)
	}
	return nil, fmt.Errorf("unknown ContentItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case contentitem.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case contentitem.FieldCefrLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCefrLevel(v)
		return nil
	case contentitem.FieldFeatureKeys:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureKeys(v)
		return nil
	case contentitem.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case contentitem.FieldModality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	}
	return fmt.Errorf("unknown ContentItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContentItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contentitem.FieldTopics) {
		fields = append(fields, contentitem.FieldTopics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentItemMutation) ClearField(name string) error {
	switch name {
	case contentitem.FieldTopics:
		m.ClearTopics()
		return nil
	}
	return fmt.Errorf("unknown ContentItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentItemMutation) ResetField(name string) error {
	switch name {
	case contentitem.FieldTitle:
		m.ResetTitle()
		return nil
	case contentitem.FieldBody:
		m.ResetBody()
		return nil
	case contentitem.FieldCefrLevel:
		m.ResetCefrLevel()
		return nil
	case contentitem.FieldFeatureKeys:
		m.ResetFeatureKeys()
		return nil
	case contentitem.FieldTopics:
		m.ResetTopics()
		return nil
	case contentitem.FieldModality:
		m.ResetModality()
		return nil
	}
	return fmt.Errorf("unknown ContentItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContentItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContentItem edge %s", name)
}

// ErrorPatternMutation represents an operation that mutates the ErrorPattern nodes in the graph.
type ErrorPatternMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	pattern_type       *string
	category           *string
	learner_production *string
	correct_form       *string
	confidence         *float64
	addconfidence      *float64
	severity           *string
	is_fossilizing     *bool
	created_at         *time.Time
	resolved_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ErrorPattern, error)
	predicates         []predicate.ErrorPattern
}

var _ ent.Mutation = (*ErrorPatternMutation)(nil)

// errorpatternOption allows management of the mutation configuration using functional options.
type errorpatternOption func(*ErrorPatternMutation)

// newErrorPatternMutation creates new mutation for the ErrorPattern entity.
func newErrorPatternMutation(c config, op Op, opts ...errorpatternOption) *ErrorPatternMutation {
	m := &ErrorPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorPatternID sets the ID field of the mutation.
func withErrorPatternID(id int) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorPattern
		)
		m.oldValue = func(ctx context.Context) (*ErrorPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorPattern sets the old ErrorPattern of the mutation.
func withErrorPattern(node *ErrorPattern) errorpatternOption {
	return func(m *ErrorPatternMutation) {
		m.oldValue = func(context.Context) (*ErrorPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorPatternMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorPatternMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ErrorPatternMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ErrorPatternMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ErrorPatternMutation) ResetUserID() {
	m.user_id = nil
}

// SetPatternType sets the "pattern_type" field.
func (m *ErrorPatternMutation) SetPatternType(s string) {
	m.pattern_type = &s
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *ErrorPatternMutation) PatternType() (r string, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldPatternType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *ErrorPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetCategory sets the "category" field.
func (m *ErrorPatternMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ErrorPatternMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ErrorPatternMutation) ResetCategory() {
	m.category = nil
}

// SetLearnerProduction sets the "learner_production" field.
func (m *ErrorPatternMutation) SetLearnerProduction(s string) {
	m.learner_production = &s
}

// LearnerProduction returns the value of the "learner_production" field in the mutation.
func (m *ErrorPatternMutation) LearnerProduction() (r string, exists bool) {
	v := m.learner_production
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerProduction returns the old "learner_production" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldLearnerProduction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerProduction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerProduction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerProduction: %w", err)
	}
	return oldValue.LearnerProduction, nil
}

// ResetLearnerProduction resets all changes to the "learner_production" field.
func (m *ErrorPatternMutation) ResetLearnerProduction() {
	m.learner_production = nil
}

// SetCorrectForm sets the "correct_form" field.
func (m *ErrorPatternMutation) SetCorrectForm(s string) {
	m.correct_form = &s
}

// CorrectForm returns the value of the "correct_form" field in the mutation.
func (m *ErrorPatternMutation) CorrectForm() (r string, exists bool) {
	v := m.correct_form
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectForm returns the old "correct_form" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldCorrectForm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectForm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectForm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectForm: %w", err)
	}
	return oldValue.CorrectForm, nil
}

// ResetCorrectForm resets all changes to the "correct_form" field.
func (m *ErrorPatternMutation) ResetCorrectForm() {
	m.correct_form = nil
}

// SetConfidence sets the "confidence" field.
func (m *ErrorPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ErrorPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ErrorPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ErrorPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ErrorPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSeverity sets the "severity" field.
func (m *ErrorPatternMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ErrorPatternMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ErrorPatternMutation) ResetSeverity() {
	m.severity = nil
}

// SetIsFossilizing sets the "is_fossilizing" field.
func (m *ErrorPatternMutation) SetIsFossilizing(b bool) {
	m.is_fossilizing = &b
}

// IsFossilizing returns the value of the "is_fossilizing" field in the mutation.
func (m *ErrorPatternMutation) IsFossilizing() (r bool, exists bool) {
	v := m.is_fossilizing
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFossilizing returns the old "is_fossilizing" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldIsFossilizing(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFossilizing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFossilizing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFossilizing: %w", err)
	}
	return oldValue.IsFossilizing, nil
}

// ResetIsFossilizing resets all changes to the "is_fossilizing" field.
func (m *ErrorPatternMutation) ResetIsFossilizing() {
	m.is_fossilizing = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ErrorPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ErrorPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ErrorPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ErrorPatternMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ErrorPatternMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ErrorPattern entity.
// If the ErrorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorPatternMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ErrorPatternMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[errorpattern.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ErrorPatternMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[errorpattern.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ErrorPatternMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, errorpattern.FieldResolvedAt)
}

// Where appends a list predicates to the ErrorPatternMutation builder.
func (m *ErrorPatternMutation) Where(ps ...predicate.ErrorPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorPattern).
func (m *ErrorPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, errorpattern.FieldUserID)
	}
	if m.pattern_type != nil {
		fields = append(fields, errorpattern.FieldPatternType)
	}
	if m.category != nil {
		fields = append(fields, errorpattern.FieldCategory)
	}
	if m.learner_production != nil {
		fields = append(fields, errorpattern.FieldLearnerProduction)
	}
	if m.correct_form != nil {
		fields = append(fields, errorpattern.FieldCorrectForm)
	}
	if m.confidence != nil {
		fields = append(fields, errorpattern.FieldConfidence)
	}
	if m.severity != nil {
		fields = append(fields, errorpattern.FieldSeverity)
	}
	if m.is_fossilizing != nil {
		fields = append(fields, errorpattern.FieldIsFossilizing)
	}
	if m.created_at != nil {
		fields = append(fields, errorpattern.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, errorpattern.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldUserID:
		return m.UserID()
	case errorpattern.FieldPatternType:
		return m.PatternType()
	case errorpattern.FieldCategory:
		return m.Category()
	case errorpattern.FieldLearnerProduction:
		return m.LearnerProduction()
	case errorpattern.FieldCorrectForm:
		return m.CorrectForm()
	case errorpattern.FieldConfidence:
		return m.Confidence()
	case errorpattern.FieldSeverity:
		return m.Severity()
	case errorpattern.FieldIsFossilizing:
		return m.IsFossilizing()
	case errorpattern.FieldCreatedAt:
		return m.CreatedAt()
	case errorpattern.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorpattern.FieldUserID:
		return m.OldUserID(ctx)
	case errorpattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case errorpattern.FieldCategory:
		return m.OldCategory(ctx)
	case errorpattern.FieldLearnerProduction:
		return m.OldLearnerProduction(ctx)
	case errorpattern.FieldCorrectForm:
		return m.OldCorrectForm(ctx)
	case errorpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case errorpattern.FieldSeverity:
		return m.OldSeverity(ctx)
	case errorpattern.FieldIsFossilizing:
		return m.OldIsFossilizing(ctx)
	case errorpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case errorpattern.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case errorpattern.FieldPatternType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case errorpattern.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case errorpattern.FieldLearnerProduction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerProduction(v)
		return nil
	case errorpattern.FieldCorrectForm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectForm(v)
		return nil
	case errorpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case errorpattern.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case errorpattern.FieldIsFossilizing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFossilizing(v)
		return nil
	case errorpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case errorpattern.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorPatternMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, errorpattern.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case errorpattern.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case errorpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(errorpattern.FieldResolvedAt) {
		fields = append(fields, errorpattern.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ClearField(name string) error {
	switch name {
	case errorpattern.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorPatternMutation) ResetField(name string) error {
	switch name {
	case errorpattern.FieldUserID:
		m.ResetUserID()
		return nil
	case errorpattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case errorpattern.FieldCategory:
		m.ResetCategory()
		return nil
	case errorpattern.FieldLearnerProduction:
		m.ResetLearnerProduction()
		return nil
	case errorpattern.FieldCorrectForm:
		m.ResetCorrectForm()
		return nil
	case errorpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case errorpattern.FieldSeverity:
		m.ResetSeverity()
		return nil
	case errorpattern.FieldIsFossilizing:
		m.ResetIsFossilizing()
		return nil
	case errorpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case errorpattern.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ErrorPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ErrorPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ErrorPattern edge %s", name)
}

// ExposureEventMutation represents an operation that mutates the ExposureEvent nodes in the graph.
type ExposureEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	user_id       *string
	feature_key   *string
	exposure_type *string
	session_id    *string
	content_id    *string
	is_correct    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExposureEvent, error)
	predicates    []predicate.ExposureEvent
}

var _ ent.Mutation = (*ExposureEventMutation)(nil)

// exposureeventOption allows management of the mutation configuration using functional options.
type exposureeventOption func(*ExposureEventMutation)

// newExposureEventMutation creates new mutation for the ExposureEvent entity.
func newExposureEventMutation(c config, op Op, opts ...exposureeventOption) *ExposureEventMutation {
	m := &ExposureEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExposureEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExposureEventID sets the ID field of the mutation.
func withExposureEventID(id int) exposureeventOption {
	return func(m *ExposureEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExposureEvent
		)
		m.oldValue = func(ctx context.Context) (*ExposureEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExposureEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExposureEvent sets the old ExposureEvent of the mutation.
func withExposureEvent(node *ExposureEvent) exposureeventOption {
	return func(m *ExposureEventMutation) {
		m.oldValue = func(context.Context) (*ExposureEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExposureEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExposureEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExposureEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExposureEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExposureEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ExposureEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExposureEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExposureEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExposureEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExposureEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExposureEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExposureEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExposureEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *ExposureEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExposureEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExposureEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetFeatureKey sets the "feature_key" field.
func (m *ExposureEventMutation) SetFeatureKey(s string) {
	m.feature_key = &s
}

// FeatureKey returns the value of the "feature_key" field in the mutation.
func (m *ExposureEventMutation) FeatureKey() (r string, exists bool) {
	v := m.feature_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureKey returns the old "feature_key" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldFeatureKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureKey: %w", err)
	}
	return oldValue.FeatureKey, nil
}

// ResetFeatureKey resets all changes to the "feature_key" field.
func (m *ExposureEventMutation) ResetFeatureKey() {
	m.feature_key = nil
}

// SetExposureType sets the "exposure_type" field.
func (m *ExposureEventMutation) SetExposureType(s string) {
	m.exposure_type = &s
}

// ExposureType returns the value of the "exposure_type" field in the mutation.
func (m *ExposureEventMutation) ExposureType() (r string, exists bool) {
	v := m.exposure_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExposureType returns the old "exposure_type" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldExposureType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposureType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposureType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposureType: %w", err)
	}
	return oldValue.ExposureType, nil
}

// ResetExposureType resets all changes to the "exposure_type" field.
func (m *ExposureEventMutation) ResetExposureType() {
	m.exposure_type = nil
}

// SetSessionID sets the "session_id" field.
func (m *ExposureEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExposureEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExposureEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetContentID sets the "content_id" field.
func (m *ExposureEventMutation) SetContentID(s string) {
	m.content_id = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *ExposureEventMutation) ContentID() (r string, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ClearContentID clears the value of the "content_id" field.
func (m *ExposureEventMutation) ClearContentID() {
	m.content_id = nil
	m.clearedFields[exposureevent.FieldContentID] = struct{}{}
}

// ContentIDCleared returns if the "content_id" field was cleared in this mutation.
func (m *ExposureEventMutation) ContentIDCleared() bool {
	_, ok := m.clearedFields[exposureevent.FieldContentID]
	return ok
}

// ResetContentID resets all changes to the "content_id" field.
func (m *ExposureEventMutation) ResetContentID() {
	m.content_id = nil
	delete(m.clearedFields, exposureevent.FieldContentID)
}

// SetIsCorrect sets the "is_correct" field.
func (m *ExposureEventMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *ExposureEventMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the ExposureEvent entity.
// If the ExposureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExposureEventMutation) OldIsCorrect(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (m *ExposureEventMutation) ClearIsCorrect() {
	m.is_correct = nil
	m.clearedFields[exposureevent.FieldIsCorrect] = struct{}{}
}

// IsCorrectCleared returns if the "is_correct" field was cleared in this mutation.
func (m *ExposureEventMutation) IsCorrectCleared() bool {
	_, ok := m.clearedFields[exposureevent.FieldIsCorrect]
	return ok
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *ExposureEventMutation) ResetIsCorrect() {
	m.is_correct = nil
	delete(m.clearedFields, exposureevent.FieldIsCorrect)
}

// Where appends a list predicates to the ExposureEventMutation builder.
func (m *ExposureEventMutation) Where(ps ...predicate.ExposureEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExposureEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExposureEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExposureEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExposureEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExposureEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExposureEvent).
func (m *ExposureEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExposureEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, exposureevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, exposureevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, exposureevent.FieldUserID)
	}
	if m.feature_key != nil {
		fields = append(fields, exposureevent.FieldFeatureKey)
	}
	if m.exposure_type != nil {
		fields = append(fields, exposureevent.FieldExposureType)
	}
	if m.session_id != nil {
		fields = append(fields, exposureevent.FieldSessionID)
	}
	if m.content_id != nil {
		fields = append(fields, exposureevent.FieldContentID)
	}
	if m.is_correct != nil {
		fields = append(fields, exposureevent.FieldIsCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExposureEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exposureevent.FieldSequence:
		return m.Sequence()
	case exposureevent.FieldTimestamp:
		return m.Timestamp()
	case exposureevent.FieldUserID:
		return m.UserID()
	case exposureevent.FieldFeatureKey:
		return m.FeatureKey()
	case exposureevent.FieldExposureType:
		return m.ExposureType()
	case exposureevent.FieldSessionID:
		return m.SessionID()
	case exposureevent.FieldContentID:
		return m.ContentID()
	case exposureevent.FieldIsCorrect:
		return m.IsCorrect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExposureEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exposureevent.FieldSequence:
		return m.OldSequence(ctx)
	case exposureevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case exposureevent.FieldUserID:
		return m.OldUserID(ctx)
	case exposureevent.FieldFeatureKey:
		return m.OldFeatureKey(ctx)
	case exposureevent.FieldExposureType:
		return m.OldExposureType(ctx)
	case exposureevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case exposureevent.FieldContentID:
		return m.OldContentID(ctx)
	case exposureevent.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown ExposureEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exposureevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case exposureevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case exposureevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exposureevent.FieldFeatureKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureKey(v)
		return nil
	case exposureevent.FieldExposureType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposureType(v)
		return nil
	case exposureevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case exposureevent.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case exposureevent.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown ExposureEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExposureEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, exposureevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExposureEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exposureevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExposureEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exposureevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ExposureEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExposureEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exposureevent.FieldContentID) {
		fields = append(fields, exposureevent.FieldContentID)
	}
	if m.FieldCleared(exposureevent.FieldIsCorrect) {
		fields = append(fields, exposureevent.FieldIsCorrect)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExposureEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExposureEventMutation) ClearField(name string) error {
	switch name {
	case exposureevent.FieldContentID:
		m.ClearContentID()
		return nil
	case exposureevent.FieldIsCorrect:
		m.ClearIsCorrect()
		return nil
	}
	return fmt.Errorf("unknown ExposureEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExposureEventMutation) ResetField(name string) error {
	switch name {
	case exposureevent.FieldSequence:
		m.ResetSequence()
		return nil
	case exposureevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case exposureevent.FieldUserID:
		m.ResetUserID()
		return nil
	case exposureevent.FieldFeatureKey:
		m.ResetFeatureKey()
		return nil
	case exposureevent.FieldExposureType:
		m.ResetExposureType()
		return nil
	case exposureevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case exposureevent.FieldContentID:
		m.ResetContentID()
		return nil
	case exposureevent.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	}
	return fmt.Errorf("unknown ExposureEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExposureEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExposureEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExposureEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExposureEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExposureEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExposureEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExposureEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExposureEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExposureEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExposureEvent edge %s", name)
}

// GrammarFeatureMutation represents an operation that mutates the GrammarFeature nodes in the graph.
type GrammarFeatureMutation struct {
	config
	op            Op
	typ           string
	id            *int
	feature_key   *string
	feature_name  *string
	category      *string
	cefr_level    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GrammarFeature, error)
	predicates    []predicate.GrammarFeature
}

var _ ent.Mutation = (*GrammarFeatureMutation)(nil)

// grammarfeatureOption allows management of the mutation configuration using functional options.
type grammarfeatureOption func(*GrammarFeatureMutation)

// newGrammarFeatureMutation creates new mutation for the GrammarFeature entity.
func newGrammarFeatureMutation(c config, op Op, opts ...grammarfeatureOption) *GrammarFeatureMutation {
	m := &GrammarFeatureMutation{
		config:        c,
		op:            op,
		typ:           TypeGrammarFeature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGrammarFeatureID sets the ID field of the mutation.
func withGrammarFeatureID(id int) grammarfeatureOption {
	return func(m *GrammarFeatureMutation) {
		var (
			err   error
			once  sync.Once
			value *GrammarFeature
		)
		m.oldValue = func(ctx context.Context) (*GrammarFeature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GrammarFeature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrammarFeature sets the old GrammarFeature of the mutation.
func withGrammarFeature(node *GrammarFeature) grammarfeatureOption {
	return func(m *GrammarFeatureMutation) {
		m.oldValue = func(context.Context) (*GrammarFeature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GrammarFeatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GrammarFeatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GrammarFeatureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GrammarFeatureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GrammarFeature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFeatureKey sets the "feature_key" field.
func (m *GrammarFeatureMutation) SetFeatureKey(s string) {
	m.feature_key = &s
}

// FeatureKey returns the value of the "feature_key" field in the mutation.
func (m *GrammarFeatureMutation) FeatureKey() (r string, exists bool) {
	v := m.feature_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureKey returns the old "feature_key" field's value of the GrammarFeature entity.
// If the GrammarFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrammarFeatureMutation) OldFeatureKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureKey: %w", err)
	}
	return oldValue.FeatureKey, nil
}

// ResetFeatureKey resets all changes to the "feature_key" field.
func (m *GrammarFeatureMutation) ResetFeatureKey() {
	m.feature_key = nil
}

// SetFeatureName sets the "feature_name" field.
func (m *GrammarFeatureMutation) SetFeatureName(s string) {
	m.feature_name = &s
}

// FeatureName returns the value of the "feature_name" field in the mutation.
func (m *GrammarFeatureMutation) FeatureName() (r string, exists bool) {
	v := m.feature_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureName returns the old "feature_name" field's value of the GrammarFeature entity.
// If the GrammarFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrammarFeatureMutation) OldFeatureName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureName: %w", err)
	}
	return oldValue.FeatureName, nil
}

// ResetFeatureName resets all changes to the "feature_name" field.
func (m *GrammarFeatureMutation) ResetFeatureName() {
	m.feature_name = nil
}

// SetCategory sets the "category" field.
func (m *GrammarFeatureMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *GrammarFeatureMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the GrammarFeature entity.
// If the GrammarFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrammarFeatureMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *GrammarFeatureMutation) ResetCategory() {
	m.category = nil
}

// SetCefrLevel sets the "cefr_level" field.
func (m *GrammarFeatureMutation) SetCefrLevel(s string) {
	m.cefr_level = &s
}

// CefrLevel returns the value of the "cefr_level" field in the mutation.
func (m *GrammarFeatureMutation) CefrLevel() (r string, exists bool) {
	v := m.cefr_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCefrLevel returns the old "cefr_level" field's value of the GrammarFeature entity.
// If the GrammarFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrammarFeatureMutation) OldCefrLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCefrLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCefrLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCefrLevel: %w", err)
	}
	return oldValue.CefrLevel, nil
}

// ResetCefrLevel resets all changes to the "cefr_level" field.
func (m *GrammarFeatureMutation) ResetCefrLevel() {
	m.cefr_level = nil
}

// Where appends a list predicates to the GrammarFeatureMutation builder.
func (m *GrammarFeatureMutation) Where(ps ...predicate.GrammarFeature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GrammarFeatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GrammarFeatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GrammarFeature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GrammarFeatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GrammarFeatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GrammarFeature).
func (m *GrammarFeatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GrammarFeatureMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.feature_key != nil {
		fields = append(fields, grammarfeature.FieldFeatureKey)
	}
	if m.feature_name != nil {
		fields = append(fields, grammarfeature.FieldFeatureName)
	}
	if m.category != nil {
		fields = append(fields, grammarfeature.FieldCategory)
	}
	if m.cefr_level != nil {
		fields = append(fields, grammarfeature.FieldCefrLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GrammarFeatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case grammarfeature.FieldFeatureKey:
		return m.FeatureKey()
	case grammarfeature.FieldFeatureName:
		return m.FeatureName()
	case grammarfeature.FieldCategory:
		return m.Category()
	case grammarfeature.FieldCefrLevel:
		return m.CefrLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GrammarFeatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case grammarfeature.FieldFeatureKey:
		return m.OldFeatureKey(ctx)
	case grammarfeature.FieldFeatureName:
		return m.OldFeatureName(ctx)
	case grammarfeature.FieldCategory:
		return m.OldCategory(ctx)
	case grammarfeature.FieldCefrLevel:
		return m.OldCefrLevel(ctx)
	}
	return nil, fmt.Errorf("unknown GrammarFeature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrammarFeatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case grammarfeature.FieldFeatureKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureKey(v)
		return nil
	case grammarfeature.FieldFeatureName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureName(v)
		return nil
	case grammarfeature.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case grammarfeature.FieldCefrLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCefrLevel(v)
		return nil
	}
	return fmt.Errorf("unknown GrammarFeature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GrammarFeatureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GrammarFeatureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrammarFeatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GrammarFeature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GrammarFeatureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GrammarFeatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GrammarFeatureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GrammarFeature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GrammarFeatureMutation) ResetField(name string) error {
	switch name {
	case grammarfeature.FieldFeatureKey:
		m.ResetFeatureKey()
		return nil
	case grammarfeature.FieldFeatureName:
		m.ResetFeatureName()
		return nil
	case grammarfeature.FieldCategory:
		m.ResetCategory()
		return nil
	case grammarfeature.FieldCefrLevel:
		m.ResetCefrLevel()
		return nil
	}
	return fmt.Errorf("unknown GrammarFeature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GrammarFeatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GrammarFeatureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GrammarFeatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GrammarFeatureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GrammarFeatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GrammarFeatureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GrammarFeatureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GrammarFeature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GrammarFeatureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GrammarFeature edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// ProficiencyRecordMutation represents an operation that mutates the ProficiencyRecord nodes in the graph.
type ProficiencyRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	user_id          *string
	overall_score    *float64
	addoverall_score *float64
	cefr_level       *string
	listening        *float64
	addlistening     *float64
	reading          *float64
	addreading       *float64
	speaking         *float64
	addspeaking      *float64
	writing          *float64
	addwriting       *float64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ProficiencyRecord, error)
	predicates       []predicate.ProficiencyRecord
}

var _ ent.Mutation = (*ProficiencyRecordMutation)(nil)

// proficiencyrecordOption allows management of the mutation configuration using functional options.
type proficiencyrecordOption func(*ProficiencyRecordMutation)

// newProficiencyRecordMutation creates new mutation for the ProficiencyRecord entity.
func newProficiencyRecordMutation(c config, op Op, opts ...proficiencyrecordOption) *ProficiencyRecordMutation {
	m := &ProficiencyRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeProficiencyRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProficiencyRecordID sets the ID field of the mutation.
func withProficiencyRecordID(id int) proficiencyrecordOption {
	return func(m *ProficiencyRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ProficiencyRecord
		)
		m.oldValue = func(ctx context.Context) (*ProficiencyRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProficiencyRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProficiencyRecord sets the old ProficiencyRecord of the mutation.
func withProficiencyRecord(node *ProficiencyRecord) proficiencyrecordOption {
	return func(m *ProficiencyRecordMutation) {
		m.oldValue = func(context.Context) (*ProficiencyRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProficiencyRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProficiencyRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProficiencyRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProficiencyRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProficiencyRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ProficiencyRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ProficiencyRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ProficiencyRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ProficiencyRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ProficiencyRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ProficiencyRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ProficiencyRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ProficiencyRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *ProficiencyRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProficiencyRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProficiencyRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *ProficiencyRecordMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *ProficiencyRecordMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *ProficiencyRecordMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *ProficiencyRecordMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *ProficiencyRecordMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetCefrLevel sets the "cefr_level" field.
func (m *ProficiencyRecordMutation) SetCefrLevel(s string) {
	m.cefr_level = &s
}

// CefrLevel returns the value of the "cefr_level" field in the mutation.
func (m *ProficiencyRecordMutation) CefrLevel() (r string, exists bool) {
	v := m.cefr_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCefrLevel returns the old "cefr_level" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldCefrLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCefrLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCefrLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCefrLevel: %w", err)
	}
	return oldValue.CefrLevel, nil
}

// ResetCefrLevel resets all changes to the "cefr_level" field.
func (m *ProficiencyRecordMutation) ResetCefrLevel() {
	m.cefr_level = nil
}

// SetListening sets the "listening" field.
func (m *ProficiencyRecordMutation) SetListening(f float64) {
	m.listening = &f
	m.addlistening = nil
}

// Listening returns the value of the "listening" field in the mutation.
func (m *ProficiencyRecordMutation) Listening() (r float64, exists bool) {
	v := m.listening
	if v == nil {
		return
	}
	return *v, true
}

// OldListening returns the old "listening" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldListening(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListening is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListening requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListening: %w", err)
	}
	return oldValue.Listening, nil
}

// AddListening adds f to the "listening" field.
func (m *ProficiencyRecordMutation) AddListening(f float64) {
	if m.addlistening != nil {
		*m.addlistening += f
	} else {
		m.addlistening = &f
	}
}

// AddedListening returns the value that was added to the "listening" field in this mutation.
func (m *ProficiencyRecordMutation) AddedListening() (r float64, exists bool) {
	v := m.addlistening
	if v == nil {
		return
	}
	return *v, true
}

// ClearListening clears the value of the "listening" field.
func (m *ProficiencyRecordMutation) ClearListening() {
	m.listening = nil
	m.addlistening = nil
	m.clearedFields[proficiencyrecord.FieldListening] = struct{}{}
}

// ListeningCleared returns if the "listening" field was cleared in this mutation.
func (m *ProficiencyRecordMutation) ListeningCleared() bool {
	_, ok := m.clearedFields[proficiencyrecord.FieldListening]
	return ok
}

// ResetListening resets all changes to the "listening" field.
func (m *ProficiencyRecordMutation) ResetListening() {
	m.listening = nil
	m.addlistening = nil
	delete(m.clearedFields, proficiencyrecord.FieldListening)
}

// SetReading sets the "reading" field.
func (m *ProficiencyRecordMutation) SetReading(f float64) {
	m.reading = &f
	m.addreading = nil
}

// Reading returns the value of the "reading" field in the mutation.
func (m *ProficiencyRecordMutation) Reading() (r float64, exists bool) {
	v := m.reading
	if v == nil {
		return
	}
	return *v, true
}

// OldReading returns the old "reading" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldReading(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReading: %w", err)
	}
	return oldValue.Reading, nil
}

// AddReading adds f to the "reading" field.
func (m *ProficiencyRecordMutation) AddReading(f float64) {
	if m.addreading != nil {
		*m.addreading += f
	} else {
		m.addreading = &f
	}
}

// AddedReading returns the value that was added to the "reading" field in this mutation.
func (m *ProficiencyRecordMutation) AddedReading() (r float64, exists bool) {
	v := m.addreading
	if v == nil {
		return
	}
	return *v, true
}

// ClearReading clears the value of the "reading" field.
func (m *ProficiencyRecordMutation) ClearReading() {
	m.reading = nil
	m.addreading = nil
	m.clearedFields[proficiencyrecord.FieldReading] = struct{}{}
}

// ReadingCleared returns if the "reading" field was cleared in this mutation.
func (m *ProficiencyRecordMutation) ReadingCleared() bool {
	_, ok := m.clearedFields[proficiencyrecord.FieldReading]
	return ok
}

// ResetReading resets all changes to the "reading" field.
func (m *ProficiencyRecordMutation) ResetReading() {
	m.reading = nil
	m.addreading = nil
	delete(m.clearedFields, proficiencyrecord.FieldReading)
}

// SetSpeaking sets the "speaking" field.
func (m *ProficiencyRecordMutation) SetSpeaking(f float64) {
	m.speaking = &f
	m.addspeaking = nil
}

// Speaking returns the value of the "speaking" field in the mutation.
func (m *ProficiencyRecordMutation) Speaking() (r float64, exists bool) {
	v := m.speaking
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeaking returns the old "speaking" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldSpeaking(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeaking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeaking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeaking: %w", err)
	}
	return oldValue.Speaking, nil
}

// AddSpeaking adds f to the "speaking" field.
func (m *ProficiencyRecordMutation) AddSpeaking(f float64) {
	if m.addspeaking != nil {
		*m.addspeaking += f
	} else {
		m.addspeaking = &f
	}
}

// AddedSpeaking returns the value that was added to the "speaking" field in this mutation.
func (m *ProficiencyRecordMutation) AddedSpeaking() (r float64, exists bool) {
	v := m.addspeaking
	if v == nil {
		return
	}
	return *v, true
}

// ClearSpeaking clears the value of the "speaking" field.
func (m *ProficiencyRecordMutation) ClearSpeaking() {
	m.speaking = nil
	m.addspeaking = nil
	m.clearedFields[proficiencyrecord.FieldSpeaking] = struct{}{}
}

// SpeakingCleared returns if the "speaking" field was cleared in this mutation.
func (m *ProficiencyRecordMutation) SpeakingCleared() bool {
	_, ok := m.clearedFields[proficiencyrecord.FieldSpeaking]
	return ok
}

// ResetSpeaking resets all changes to the "speaking" field.
func (m *ProficiencyRecordMutation) ResetSpeaking() {
	m.speaking = nil
	m.addspeaking = nil
	delete(m.clearedFields, proficiencyrecord.FieldSpeaking)
}

// SetWriting sets the "writing" field.
func (m *ProficiencyRecordMutation) SetWriting(f float64) {
	m.writing = &f
	m.addwriting = nil
}

// Writing returns the value of the "writing" field in the mutation.
func (m *ProficiencyRecordMutation) Writing() (r float64, exists bool) {
	v := m.writing
	if v == nil {
		return
	}
	return *v, true
}

// OldWriting returns the old "writing" field's value of the ProficiencyRecord entity.
// If the ProficiencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProficiencyRecordMutation) OldWriting(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWriting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWriting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWriting: %w", err)
	}
	return oldValue.Writing, nil
}

// AddWriting adds f to the "writing" field.
func (m *ProficiencyRecordMutation) AddWriting(f float64) {
	if m.addwriting != nil {
		*m.addwriting += f
	} else {
		m.addwriting = &f
	}
}

// AddedWriting returns the value that was added to the "writing" field in this mutation.
func (m *ProficiencyRecordMutation) AddedWriting() (r float64, exists bool) {
	v := m.addwriting
	if v == nil {
		return
	}
	return *v, true
}

// ClearWriting clears the value of the "writing" field.
func (m *ProficiencyRecordMutation) ClearWriting() {
	m.writing = nil
	m.addwriting = nil
	m.clearedFields[proficiencyrecord.FieldWriting] = struct{}{}
}

// WritingCleared returns if the "writing" field was cleared in this mutation.
func (m *ProficiencyRecordMutation) WritingCleared() bool {
	_, ok := m.clearedFields[proficiencyrecord.FieldWriting]
	return ok
}

// ResetWriting resets all changes to the "writing" field.
func (m *ProficiencyRecordMutation) ResetWriting() {
	m.writing = nil
	m.addwriting = nil
	delete(m.clearedFields, proficiencyrecord.FieldWriting)
}

// Where appends a list predicates to the ProficiencyRecordMutation builder.
func (m *ProficiencyRecordMutation) Where(ps ...predicate.ProficiencyRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProficiencyRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProficiencyRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProficiencyRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProficiencyRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProficiencyRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProficiencyRecord).
func (m *ProficiencyRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProficiencyRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, proficiencyrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, proficiencyrecord.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, proficiencyrecord.FieldUserID)
	}
	if m.overall_score != nil {
		fields = append(fields, proficiencyrecord.FieldOverallScore)
	}
	if m.cefr_level != nil {
		fields = append(fields, proficiencyrecord.FieldCefrLevel)
	}
	if m.listening != nil {
		fields = append(fields, proficiencyrecord.FieldListening)
	}
	if m.reading != nil {
		fields = append(fields, proficiencyrecord.FieldReading)
	}
	if m.speaking != nil {
		fields = append(fields, proficiencyrecord.FieldSpeaking)
	}
	if m.writing != nil {
		fields = append(fields, proficiencyrecord.FieldWriting)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProficiencyRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proficiencyrecord.FieldSequence:
		return m.Sequence()
	case proficiencyrecord.FieldTimestamp:
		return m.Timestamp()
	case proficiencyrecord.FieldUserID:
		return m.UserID()
	case proficiencyrecord.FieldOverallScore:
		return m.OverallScore()
	case proficiencyrecord.FieldCefrLevel:
		return m.CefrLevel()
	case proficiencyrecord.FieldListening:
		return m.Listening()
	case proficiencyrecord.FieldReading:
		return m.Reading()
	case proficiencyrecord.FieldSpeaking:
		return m.Speaking()
	case proficiencyrecord.FieldWriting:
		return m.Writing()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProficiencyRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proficiencyrecord.FieldSequence:
		return m.OldSequence(ctx)
	case proficiencyrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case proficiencyrecord.FieldUserID:
		return m.OldUserID(ctx)
	case proficiencyrecord.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case proficiencyrecord.FieldCefrLevel:
		return m.OldCefrLevel(ctx)
	case proficiencyrecord.FieldListening:
		return m.OldListening(ctx)
	case proficiencyrecord.FieldReading:
		return m.OldReading(ctx)
	case proficiencyrecord.FieldSpeaking:
		return m.OldSpeaking(ctx)
	case proficiencyrecord.FieldWriting:
		return m.OldWriting(ctx)
	}
	return nil, fmt.Errorf("unknown ProficiencyRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProficiencyRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proficiencyrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case proficiencyrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case proficiencyrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case proficiencyrecord.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case proficiencyrecord.FieldCefrLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCefrLevel(v)
		return nil
	case proficiencyrecord.FieldListening:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListening(v)
		return nil
	case proficiencyrecord.FieldReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReading(v)
		return nil
	case proficiencyrecord.FieldSpeaking:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeaking(v)
		return nil
	case proficiencyrecord.FieldWriting:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWriting(v)
		return nil
	}
	return fmt.Errorf("unknown ProficiencyRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProficiencyRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, proficiencyrecord.FieldSequence)
	}
	if m.addoverall_score != nil {
		fields = append(fields, proficiencyrecord.FieldOverallScore)
	}
	if m.addlistening != nil {
		fields = append(fields, proficiencyrecord.FieldListening)
	}
	if m.addreading != nil {
		fields = append(fields, proficiencyrecord.FieldReading)
	}
	if m.addspeaking != nil {
		fields = append(fields, proficiencyrecord.FieldSpeaking)
	}
	if m.addwriting != nil {
		fields = append(fields, proficiencyrecord.FieldWriting)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProficiencyRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proficiencyrecord.FieldSequence:
		return m.AddedSequence()
	case proficiencyrecord.FieldOverallScore:
		return m.AddedOverallScore()
	case proficiencyrecord.FieldListening:
		return m.AddedListening()
	case proficiencyrecord.FieldReading:
		return m.AddedReading()
	case proficiencyrecord.FieldSpeaking:
		return m.AddedSpeaking()
	case proficiencyrecord.FieldWriting:
		return m.AddedWriting()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProficiencyRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proficiencyrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case proficiencyrecord.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case proficiencyrecord.FieldListening:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListening(v)
		return nil
	case proficiencyrecord.FieldReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReading(v)
		return nil
	case proficiencyrecord.FieldSpeaking:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpeaking(v)
		return nil
	case proficiencyrecord.FieldWriting:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWriting(v)
		return nil
	}
	return fmt.Errorf("unknown ProficiencyRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProficiencyRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proficiencyrecord.FieldListening) {
		fields = append(fields, proficiencyrecord.FieldListening)
	}
	if m.FieldCleared(proficiencyrecord.FieldReading) {
		fields = append(fields, proficiencyrecord.FieldReading)
	}
	if m.FieldCleared(proficiencyrecord.FieldSpeaking) {
		fields = append(fields, proficiencyrecord.FieldSpeaking)
	}
	if m.FieldCleared(proficiencyrecord.FieldWriting) {
		fields = append(fields, proficiencyrecord.FieldWriting)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProficiencyRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProficiencyRecordMutation) ClearField(name string) error {
	switch name {
	case proficiencyrecord.FieldListening:
		m.ClearListening()
		return nil
	case proficiencyrecord.FieldReading:
		m.ClearReading()
		return nil
	case proficiencyrecord.FieldSpeaking:
		m.ClearSpeaking()
		return nil
	case proficiencyrecord.FieldWriting:
		m.ClearWriting()
		return nil
	}
	return fmt.Errorf("unknown ProficiencyRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProficiencyRecordMutation) ResetField(name string) error {
	switch name {
	case proficiencyrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case proficiencyrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case proficiencyrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case proficiencyrecord.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case proficiencyrecord.FieldCefrLevel:
		m.ResetCefrLevel()
		return nil
	case proficiencyrecord.FieldListening:
		m.ResetListening()
		return nil
	case proficiencyrecord.FieldReading:
		m.ResetReading()
		return nil
	case proficiencyrecord.FieldSpeaking:
		m.ResetSpeaking()
		return nil
	case proficiencyrecord.FieldWriting:
		m.ResetWriting()
		return nil
	}
	return fmt.Errorf("unknown ProficiencyRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProficiencyRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProficiencyRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProficiencyRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProficiencyRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProficiencyRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProficiencyRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProficiencyRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProficiencyRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProficiencyRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProficiencyRecord edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lmdrew96/chaoslimba/ent/contentitem"
	"github.com/lmdrew96/chaoslimba/ent/errorpattern"
	"github.com/lmdrew96/chaoslimba/ent/exposureevent"
	"github.com/lmdrew96/chaoslimba/ent/grammarfeature"
	"github.com/lmdrew96/chaoslimba/ent/llmrequestevent"
	"github.com/lmdrew96/chaoslimba/ent/proficiencyrecord"
	"github.com/lmdrew96/chaoslimba/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescTitle is the schema descriptor for title field.
	contentitemDescTitle := contentitemFields[0].Descriptor()
	// contentitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	contentitem.TitleValidator = contentitemDescTitle.Validators[0].(func(string) error)
	// contentitemDescBody is the schema descriptor for body field.
	contentitemDescBody := contentitemFields[1].Descriptor()
	// contentitem.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	contentitem.BodyValidator = contentitemDescBody.Validators[0].(func(string) error)
	// contentitemDescCefrLevel is the schema descriptor for cefr_level field.
	contentitemDescCefrLevel := contentitemFields[2].Descriptor()
	// contentitem.CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	contentitem.CefrLevelValidator = contentitemDescCefrLevel.Validators[0].(func(string) error)
	// contentitemDescModality is the schema descriptor for modality field.
	contentitemDescModality := contentitemFields[5].Descriptor()
	// contentitem.DefaultModality holds the default value on creation for the modality field.
	contentitem.DefaultModality = contentitemDescModality.Default.(string)
	errorpatternFields := schema.ErrorPattern{}.Fields()
	_ = errorpatternFields
	// errorpatternDescUserID is the schema descriptor for user_id field.
	errorpatternDescUserID := errorpatternFields[0].Descriptor()
	// errorpattern.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	errorpattern.UserIDValidator = errorpatternDescUserID.Validators[0].(func(string) error)
	// errorpatternDescPatternType is the schema descriptor for pattern_type field.
	errorpatternDescPatternType := errorpatternFields[1].Descriptor()
	// errorpattern.PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	errorpattern.PatternTypeValidator = errorpatternDescPatternType.Validators[0].(func(string) error)
	// errorpatternDescCategory is the schema descriptor for category field.
	errorpatternDescCategory := errorpatternFields[2].Descriptor()
	// errorpattern.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	errorpattern.CategoryValidator = errorpatternDescCategory.Validators[0].(func(string) error)
	// errorpatternDescSeverity is the schema descriptor for severity field.
	errorpatternDescSeverity := errorpatternFields[6].Descriptor()
	// errorpattern.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	errorpattern.SeverityValidator = errorpatternDescSeverity.Validators[0].(func(string) error)
	// errorpatternDescIsFossilizing is the schema descriptor for is_fossilizing field.
	errorpatternDescIsFossilizing := errorpatternFields[7].Descriptor()
	// errorpattern.DefaultIsFossilizing holds the default value on creation for the is_fossilizing field.
	errorpattern.DefaultIsFossilizing = errorpatternDescIsFossilizing.Default.(bool)
	// errorpatternDescCreatedAt is the schema descriptor for created_at field.
	errorpatternDescCreatedAt := errorpatternFields[8].Descriptor()
	// errorpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	errorpattern.DefaultCreatedAt = errorpatternDescCreatedAt.Default.(func() time.Time)
	exposureeventMixin := schema.ExposureEvent{}.Mixin()
	exposureeventMixinFields0 := exposureeventMixin[0].Fields()
	_ = exposureeventMixinFields0
	exposureeventFields := schema.ExposureEvent{}.Fields()
	_ = exposureeventFields
	// exposureeventDescTimestamp is the schema descriptor for timestamp field.
	exposureeventDescTimestamp := exposureeventMixinFields0[1].Descriptor()
	// exposureevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exposureevent.DefaultTimestamp = exposureeventDescTimestamp.Default.(func() time.Time)
	// exposureeventDescUserID is the schema descriptor for user_id field.
	exposureeventDescUserID := exposureeventFields[0].Descriptor()
	// exposureevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	exposureevent.UserIDValidator = exposureeventDescUserID.Validators[0].(func(string) error)
	// exposureeventDescFeatureKey is the schema descriptor for feature_key field.
	exposureeventDescFeatureKey := exposureeventFields[1].Descriptor()
	// exposureevent.FeatureKeyValidator is a validator for the "feature_key" field. It is called by the builders before save.
	exposureevent.FeatureKeyValidator = exposureeventDescFeatureKey.Validators[0].(func(string) error)
	// exposureeventDescExposureType is the schema descriptor for exposure_type field.
	exposureeventDescExposureType := exposureeventFields[2].Descriptor()
	// exposureevent.ExposureTypeValidator is a validator for the "exposure_type" field. It is called by the builders before save.
	exposureevent.ExposureTypeValidator = exposureeventDescExposureType.Validators[0].(func(string) error)
	// exposureeventDescSessionID is the schema descriptor for session_id field.
	exposureeventDescSessionID := exposureeventFields[3].Descriptor()
	// exposureevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	exposureevent.SessionIDValidator = exposureeventDescSessionID.Validators[0].(func(string) error)
	grammarfeatureFields := schema.GrammarFeature{}.Fields()
	_ = grammarfeatureFields
	// grammarfeatureDescFeatureKey is the schema descriptor for feature_key field.
	grammarfeatureDescFeatureKey := grammarfeatureFields[0].Descriptor()
	// grammarfeature.FeatureKeyValidator is a validator for the "feature_key" field. It is called by the builders before save.
	grammarfeature.FeatureKeyValidator = grammarfeatureDescFeatureKey.Validators[0].(func(string) error)
	// grammarfeatureDescFeatureName is the schema descriptor for feature_name field.
	grammarfeatureDescFeatureName := grammarfeatureFields[1].Descriptor()
	// grammarfeature.FeatureNameValidator is a validator for the "feature_name" field. It is called by the builders before save.
	grammarfeature.FeatureNameValidator = grammarfeatureDescFeatureName.Validators[0].(func(string) error)
	// grammarfeatureDescCategory is the schema descriptor for category field.
	grammarfeatureDescCategory := grammarfeatureFields[2].Descriptor()
	// grammarfeature.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	grammarfeature.CategoryValidator = grammarfeatureDescCategory.Validators[0].(func(string) error)
	// grammarfeatureDescCefrLevel is the schema descriptor for cefr_level field.
	grammarfeatureDescCefrLevel := grammarfeatureFields[3].Descriptor()
	// grammarfeature.CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	grammarfeature.CefrLevelValidator = grammarfeatureDescCefrLevel.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	proficiencyrecordMixin := schema.ProficiencyRecord{}.Mixin()
	proficiencyrecordMixinFields0 := proficiencyrecordMixin[0].Fields()
	_ = proficiencyrecordMixinFields0
	proficiencyrecordFields := schema.ProficiencyRecord{}.Fields()
	_ = proficiencyrecordFields
	// proficiencyrecordDescTimestamp is the schema descriptor for timestamp field.
	proficiencyrecordDescTimestamp := proficiencyrecordMixinFields0[1].Descriptor()
	// proficiencyrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	proficiencyrecord.DefaultTimestamp = proficiencyrecordDescTimestamp.Default.(func() time.Time)
	// proficiencyrecordDescUserID is the schema descriptor for user_id field.
	proficiencyrecordDescUserID := proficiencyrecordFields[0].Descriptor()
	// proficiencyrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	proficiencyrecord.UserIDValidator = proficiencyrecordDescUserID.Validators[0].(func(string) error)
	// proficiencyrecordDescCefrLevel is the schema descriptor for cefr_level field.
	proficiencyrecordDescCefrLevel := proficiencyrecordFields[2].Descriptor()
	// proficiencyrecord.CefrLevelValidator is a validator for the "cefr_level" field. It is called by the builders before save.
	proficiencyrecord.CefrLevelValidator = proficiencyrecordDescCefrLevel.Validators[0].(func(string) error)
}

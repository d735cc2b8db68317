// Package features holds the built-in grammar feature catalog and the
// starter content set used by the seed command. The catalog targets
// Spanish learners; keys are stable identifiers the exposure log and
// error log reference.
package features

import "github.com/lmdrew96/chaoslimba/internal/store"

// Catalog returns the built-in grammar feature catalog in level order.
func Catalog() []*store.Feature {
	return []*store.Feature{
		{FeatureKey: "present_tense_regular", FeatureName: "Present tense, regular verbs", Category: "verb_conjugation", CEFRLevel: "A1"},
		{FeatureKey: "gender_agreement", FeatureName: "Noun-adjective gender agreement", Category: "agreement", CEFRLevel: "A1"},
		{FeatureKey: "plural_formation", FeatureName: "Plural formation", Category: "morphology", CEFRLevel: "A1"},
		{FeatureKey: "ser_vs_estar", FeatureName: "Ser vs estar", Category: "copula", CEFRLevel: "A1"},
		{FeatureKey: "definite_articles", FeatureName: "Definite and indefinite articles", Category: "determiners", CEFRLevel: "A1"},

		{FeatureKey: "present_tense_irregular", FeatureName: "Present tense, irregular verbs", Category: "verb_conjugation", CEFRLevel: "A2"},
		{FeatureKey: "gustar_verbs", FeatureName: "Gustar-type verbs", Category: "verb_valency", CEFRLevel: "A2"},
		{FeatureKey: "preterite_tense", FeatureName: "Preterite tense", Category: "verb_conjugation", CEFRLevel: "A2"},
		{FeatureKey: "reflexive_verbs", FeatureName: "Reflexive verbs", Category: "verb_valency", CEFRLevel: "A2"},
		{FeatureKey: "direct_object_pronouns", FeatureName: "Direct object pronouns", Category: "pronouns", CEFRLevel: "A2"},

		{FeatureKey: "preterite_vs_imperfect", FeatureName: "Preterite vs imperfect", Category: "aspect", CEFRLevel: "B1"},
		{FeatureKey: "por_vs_para", FeatureName: "Por vs para", Category: "prepositions", CEFRLevel: "B1"},
		{FeatureKey: "present_subjunctive", FeatureName: "Present subjunctive", Category: "mood", CEFRLevel: "B1"},
		{FeatureKey: "object_pronoun_order", FeatureName: "Double object pronoun order", Category: "pronouns", CEFRLevel: "B1"},
		{FeatureKey: "future_tense", FeatureName: "Future tense", Category: "verb_conjugation", CEFRLevel: "B1"},

		{FeatureKey: "imperfect_subjunctive", FeatureName: "Imperfect subjunctive", Category: "mood", CEFRLevel: "B2"},
		{FeatureKey: "conditional_clauses", FeatureName: "Conditional si-clauses", Category: "syntax", CEFRLevel: "B2"},
		{FeatureKey: "passive_se", FeatureName: "Passive and impersonal se", Category: "voice", CEFRLevel: "B2"},
		{FeatureKey: "relative_clauses", FeatureName: "Relative clauses", Category: "syntax", CEFRLevel: "B2"},

		{FeatureKey: "subjunctive_sequence", FeatureName: "Sequence of tenses with subjunctive", Category: "mood", CEFRLevel: "C1"},
		{FeatureKey: "cleft_sentences", FeatureName: "Cleft and pseudo-cleft sentences", Category: "syntax", CEFRLevel: "C1"},
		{FeatureKey: "idiomatic_prepositions", FeatureName: "Idiomatic preposition use", Category: "prepositions", CEFRLevel: "C1"},

		{FeatureKey: "register_shifts", FeatureName: "Register and formality shifts", Category: "pragmatics", CEFRLevel: "C2"},
		{FeatureKey: "dialectal_variation", FeatureName: "Dialectal variation", Category: "pragmatics", CEFRLevel: "C2"},
	}
}

// StarterContent returns the content items installed by the seed command.
// Each item is tagged with the catalog features it exercises.
func StarterContent() []*store.ContentItem {
	return []*store.ContentItem{
		{
			Title:       "Mi familia",
			Body:        "Hola, me llamo Ana. Mi familia es pequeña. Mi padre es alto y mi madre es simpática. Tenemos un gato negro.",
			CEFRLevel:   "A1",
			FeatureKeys: []string{"present_tense_regular", "gender_agreement", "ser_vs_estar"},
			Topics:      []string{"family", "descriptions"},
			Modality:    "text",
		},
		{
			Title:       "En el mercado",
			Body:        "Los sábados voy al mercado. Compro frutas y verduras. Las manzanas están muy ricas en otoño.",
			CEFRLevel:   "A1",
			FeatureKeys: []string{"definite_articles", "plural_formation", "ser_vs_estar"},
			Topics:      []string{"shopping", "food"},
			Modality:    "text",
		},
		{
			Title:       "Un día en la ciudad",
			Body:        "Ayer fui al centro con mis amigos. Comimos en un restaurante y después caminamos por el parque. Me gustó mucho el paseo.",
			CEFRLevel:   "A2",
			FeatureKeys: []string{"preterite_tense", "gustar_verbs"},
			Topics:      []string{"city life", "leisure"},
			Modality:    "text",
		},
		{
			Title:       "La rutina de Marta",
			Body:        "Marta se levanta a las siete. Se ducha, se viste y desayuna con su hermano. Los veo casi todos los días en el autobús.",
			CEFRLevel:   "A2",
			FeatureKeys: []string{"reflexive_verbs", "direct_object_pronouns", "present_tense_irregular"},
			Topics:      []string{"daily routine"},
			Modality:    "text",
		},
		{
			Title:       "Cuando era niño",
			Body:        "Cuando era niño, vivíamos en un pueblo pequeño. Un verano llegó un circo y toda la familia fue a verlo. Aquella noche decidí que quería viajar.",
			CEFRLevel:   "B1",
			FeatureKeys: []string{"preterite_vs_imperfect"},
			Topics:      []string{"childhood", "memories"},
			Modality:    "text",
		},
		{
			Title:       "Consejos para el viaje",
			Body:        "Espero que tengas un buen viaje. Es importante que lleves el pasaporte y que salgas para el aeropuerto con tiempo. Este regalo es para tu hermana.",
			CEFRLevel:   "B1",
			FeatureKeys: []string{"present_subjunctive", "por_vs_para"},
			Topics:      []string{"travel", "advice"},
			Modality:    "text",
		},
		{
			Title:       "Si pudiera elegir",
			Body:        "Si pudiera elegir cualquier trabajo, sería traductora. Me lo dijo una profesora que admiraba mucho: se aprende una lengua viviéndola.",
			CEFRLevel:   "B2",
			FeatureKeys: []string{"imperfect_subjunctive", "conditional_clauses", "passive_se"},
			Topics:      []string{"work", "aspirations"},
			Modality:    "text",
		},
		{
			Title:       "El barrio que cambió",
			Body:        "El barrio en el que crecí ya no existe tal como lo recuerdo. Se construyeron torres donde antes había huertas, y lo que más echo de menos es el silencio.",
			CEFRLevel:   "C1",
			FeatureKeys: []string{"relative_clauses", "cleft_sentences", "passive_se"},
			Topics:      []string{"urban change", "memory"},
			Modality:    "text",
		},
	}
}

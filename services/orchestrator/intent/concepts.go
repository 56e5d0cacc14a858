// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package intent

import "regexp"

// article32vs226Pattern catches the writ-jurisdiction comparison before a
// bare article number match would swallow it.
var article32vs226Pattern = regexp.MustCompile(`\b(?:article 32.*article 226|article 226.*article 32|32 vs 226|difference.*32.*226|32.*226.*difference|writ.*32.*226)\b`)

// articleNumberPattern extracts a bare constitutional article number.
var articleNumberPattern = regexp.MustCompile(`\b(?:article|art\.?)\s*(\d+)\b`)

// knownArticles maps article numbers to concept keys. Unknown numbers fall
// back to the generic constitution concept.
var knownArticles = map[string]string{
	"14": "article_14", "15": "article_15", "16": "article_16",
	"17": "article_17", "19": "article_19", "20": "article_20",
	"21": "article_21", "22": "article_22", "23": "article_23",
	"24": "article_24", "25": "article_25", "29": "article_29",
	"30": "article_30", "32": "article_32", "44": "article_44",
	"51": "article_51a", "72": "pardon_remission", "161": "pardon_remission",
	"226": "article_226", "352": "article_352", "356": "article_356",
	"370": "article_370", "35": "article_370",
}

// conceptRules map query patterns to curated concept keys.
// Order matters - first match wins. Situational patterns come before the
// generic ones that would otherwise swallow them, e.g. "quash fir" before
// the bare "fir" pattern and "dowry death" before "dowry".
var conceptRules = []struct {
	pattern *regexp.Regexp
	key     string
}{
	// Practical scenarios.
	{regexp.MustCompile(`\b(?:police.*arrest.*without.*warrant|arrest without warrant|warrantless arrest)\b`), "arrest_without_warrant"},
	{regexp.MustCompile(`\b(?:bail.*murder|murder.*bail|get bail.*murder)\b`), "bail_in_murder"},
	{regexp.MustCompile(`\b(?:cheats me|cheated me|someone cheat|money cheat|fraud.*money)\b`), "cheating_remedies"},
	{regexp.MustCompile(`\b(?:police.*search.*without|search.*house.*warrant|search without warrant)\b`), "police_search"},
	{regexp.MustCompile(`\b(?:right to.*silent|remain silent|stay silent)\b`), "right_to_silence"},
	{regexp.MustCompile(`\b(?:drunk driv|drunken driv|drive.*drunk|driving.*drunk|drink and drive)\b`), "drunk_driving"},
	{regexp.MustCompile(`\b(?:cheque.*bounce|check.*bounce|bounce.*cheque|dishon.*cheque)\b`), "cheque_bounce"},
	{regexp.MustCompile(`\b(?:online.*defam|defam.*online|cyber.*defam|internet.*defam)\b`), "online_defamation"},
	{regexp.MustCompile(`\b(?:how long.*trial|trial.*take|duration.*trial|criminal trial.*time)\b`), "trial_duration"},
	{regexp.MustCompile(`\b(?:process.*bail|bail.*process|getting bail|how to get bail)\b`), "bail_process"},
	{regexp.MustCompile(`\b(?:during.*custody|police custody|custody.*rights|what happens.*custody)\b`), "custody_rights"},
	{regexp.MustCompile(`\b(?:if.*threaten|being threaten|someone threaten|what to do.*threat)\b`), "threat_remedies"},
	{regexp.MustCompile(`\b(?:rights.*victim|victim.*rights|i am.*victim)\b`), "victim_rights"},

	// Priority edge cases, before generic constitutional patterns.
	{regexp.MustCompile(`\b(?:emergency.*fundamental|fundamental.*emergency|suspend.*right|right.*suspend|article 358|article 359)\b`), "emergency_fundamental_rights"},
	{regexp.MustCompile(`\b(?:blood sample|dna test|section 53|compel.*blood|compel.*dna|accused.*blood)\b`), "blood_sample_examination"},
	{regexp.MustCompile(`\b(?:insanity|section 84|unsound mind|mental.*ill|mentally ill|mcnaughten)\b`), "insanity_defense"},
	{regexp.MustCompile(`\b(?:judge.*witness|witness.*judge|can judge.*testif|competent witness)\b`), "judge_as_witness"},
	{regexp.MustCompile(`\b(?:can fir.*quash|quash.*fir|false fir|quash fir|section 482)\b`), "crpc_section_482"},

	// Named constitutional article patterns.
	{regexp.MustCompile(`\b(?:article 14|equality before law|right to equality)\b`), "article_14"},
	{regexp.MustCompile(`\b(?:article 19|freedom of speech|right to freedom)\b`), "article_19"},
	{regexp.MustCompile(`\b(?:article 20|double jeopardy|ex.?post.?facto)\b`), "article_20"},
	{regexp.MustCompile(`\b(?:article 21|right to life)\b`), "article_21"},
	{regexp.MustCompile(`\b(?:article 22|preventive detention|protection.*arrest)\b`), "article_22"},
	{regexp.MustCompile(`\b(?:article 23|right against exploitation|forced labour|child labour|article 24)\b`), "article_23"},
	{regexp.MustCompile(`\b(?:article 25|freedom of religion|right to religion)\b`), "article_25"},
	{regexp.MustCompile(`\b(?:article 32|constitutional remedies)\b`), "article_32"},
	{regexp.MustCompile(`\b(?:article 44|uniform civil code|ucc)\b`), "article_44"},
	{regexp.MustCompile(`\b(?:article 226|high court writ)\b`), "article_226"},
	{regexp.MustCompile(`\b(?:article 352|national emergency)\b`), "article_352"},
	{regexp.MustCompile(`\b(?:article 356|president.*rule|state emergency)\b`), "article_356"},
	{regexp.MustCompile(`\b(?:fundamental rights|part iii|part 3)\b`), "constitution"},
	{regexp.MustCompile(`\b(?:directive principles|dpsp|part iv|part 4)\b`), "constitution"},

	// Dowry, before the writs so "dowry prohibition act" never lands on
	// the writ of prohibition.
	{regexp.MustCompile(`\b(?:dowry death|304b|dowry.*death|death.*dowry)\b`), "dowry_death"},
	{regexp.MustCompile(`\b(?:dowry prohibition|dowry.*act|dowry)\b`), "dowry"},

	// Writs.
	{regexp.MustCompile(`\b(?:habeas corpus)\b`), "habeas_corpus"},
	{regexp.MustCompile(`\b(?:mandamus)\b`), "mandamus"},
	{regexp.MustCompile(`\b(?:certiorari)\b`), "certiorari"},
	{regexp.MustCompile(`\bprohibition\b`), "prohibition"},
	{regexp.MustCompile(`\b(?:quo warranto)\b`), "quo_warranto"},
	{regexp.MustCompile(`\b(?:writ|writs)\b`), "writ"},

	// Landmark cases.
	{regexp.MustCompile(`\b(?:kesavananda|bharati|basic structure)\b`), "case_kesavananda"},
	{regexp.MustCompile(`\b(?:maneka gandhi|just.*fair.*reasonable)\b`), "case_maneka_gandhi"},
	{regexp.MustCompile(`\b(?:shah bano|muslim.*maintenance)\b`), "case_shah_bano"},
	{regexp.MustCompile(`\b(?:vishaka|sexual harassment.*workplace|posh)\b`), "case_vishaka"},
	{regexp.MustCompile(`\b(?:dk basu|d\.?k\.?\s*basu|custodial.*guidelines|arrest guidelines)\b`), "case_dk_basu"},
	{regexp.MustCompile(`\b(?:bachan singh|rarest of rare|death penalty.*case)\b`), "case_bachan_singh"},
	{regexp.MustCompile(`\b(?:adm jabalpur|emergency.*habeas)\b`), "case_adm_jabalpur"},
	{regexp.MustCompile(`\b(?:puttaswamy|privacy.*judgment|right to privacy)\b`), "case_privacy"},
	{regexp.MustCompile(`\b(?:navtej johar|section 377|lgbtq|homosexual)\b`), "case_navtej_johar"},
	{regexp.MustCompile(`\b(?:shreya singhal|66a|section 66a)\b`), "case_shreya_singhal"},
	{regexp.MustCompile(`\b(?:arnesh kumar|498a.*guidelines)\b`), "case_arnesh_kumar"},
	{regexp.MustCompile(`\b(?:triple talaq|shayara bano|talaq.*case)\b`), "case_triple_talaq"},
	{regexp.MustCompile(`\b(?:sabarimala|women.*temple)\b`), "case_sabarimala"},

	// Evidence Act, before procedures so "evidence" never lands on
	// trial_procedure.
	{regexp.MustCompile(`\b(?:hearsay.*evidence|hearsay)\b`), "hearsay_evidence"},
	{regexp.MustCompile(`\b(?:circumstantial.*evidence|indirect.*evidence)\b`), "circumstantial_evidence"},
	{regexp.MustCompile(`\b(?:expert.*evidence|expert.*opinion|section 45)\b`), "expert_evidence"},
	{regexp.MustCompile(`\b(?:dying.*declaration|section 32.*evidence|statement.*dead)\b`), "dying_declaration"},
	{regexp.MustCompile(`\b(?:confession.*police|police.*confession|section 25|section 26|section 27)\b`), "confession_evidence"},
	{regexp.MustCompile(`\b(?:electronic.*evidence|section 65b|65b certificate|digital.*evidence)\b`), "electronic_evidence"},
	{regexp.MustCompile(`\b(?:burden of proof|onus of proof|who must prove)\b`), "burden_of_proof"},
	{regexp.MustCompile(`\b(?:best evidence.*rule|original document.*evidence|section 64.*evidence|primary evidence)\b`), "best_evidence_rule"},
	{regexp.MustCompile(`\b(?:wife.*testify|husband.*wife.*privilege|marital.*privilege|spouse.*testify|section 122)\b`), "wife_testimony_privilege"},
	{regexp.MustCompile(`\b(?:estoppel|cannot.*deny|section 115)\b`), "estoppel"},
	{regexp.MustCompile(`\b(?:judicial.*notice|court.*notice|section 56|section 57|facts.*notice)\b`), "judicial_notice"},
	{regexp.MustCompile(`\b(?:res.*gestae|contemporaneous.*statement|section 6.*evidence|things.*transacted)\b`), "res_gestae"},
	{regexp.MustCompile(`\b(?:evidence act|indian evidence)\b`), "evidence_act"},
	{regexp.MustCompile(`\b(?:presumption of innocence|innocent until proven|burden on prosecution)\b`), "presumption_of_innocence"},

	// FIR quashing, before the generic FIR patterns.
	{regexp.MustCompile(`\b(?:quash|quashed)\b.*\bfir\b|\bfir\b.*(?:quash|quashed)|section 482`), "crpc_section_482"},

	// Procedures.
	{regexp.MustCompile(`\b(?:fir.*online|online.*fir|e.?fir|file fir online|can fir.*filed online)\b`), "fir_filing"},
	{regexp.MustCompile(`\b(?:how to file.*fir|file.*fir|fir filing|fir procedure|zero fir)\b`), "fir_filing"},
	{regexp.MustCompile(`\b(?:fir|first information report)\b`), "fir"},
	{regexp.MustCompile(`\b(?:chargesheet|charge sheet)\b`), "chargesheet"},
	{regexp.MustCompile(`\b(?:what happens after fir|after fir|fir filed)\b`), "post_fir_procedure"},
	{regexp.MustCompile(`\b(?:trial procedure|criminal trial|court procedure|how trial works|what is trial)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:appeal|revision|review petition|challenge judgment|how to file appeal)\b`), "appeal_procedure"},
	{regexp.MustCompile(`\b(?:cross.?examination|examine witness)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:witness rights|witness protection)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:judgment|acquittal|conviction)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:sentencing|sentence)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:present evidence|how to present evidence)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:how long).*(?:trial|case|appeal)\b`), "trial_procedure"},
	{regexp.MustCompile(`\b(?:what is review|judicial review)\b`), "appeal_procedure"},

	// Bail.
	{regexp.MustCompile(`\b(?:anticipatory bail|bail before arrest)\b`), "anticipatory_bail"},
	{regexp.MustCompile(`\b(?:types of bail|regular bail|default bail|statutory bail|interim bail)\b`), "bail_types"},
	{regexp.MustCompile(`\b(?:apply.*bail|how to get bail|bail application|bail conditions|bail procedure)\b`), "bail_procedure"},
	{regexp.MustCompile(`\b(?:what is bail|who.*grant.*bail|bail amount|bail.*cancelled|cancel.*bail)\b`), "bail_procedure"},

	// Arrest.
	{regexp.MustCompile(`\b(?:arrest without warrant|warrant needed|arrest warrant|warrantless arrest)\b`), "arrest_procedure"},
	{regexp.MustCompile(`\b(?:miranda rights|rights during arrest|arrest rights)\b`), "arrested_rights"},
	{regexp.MustCompile(`\b(?:rights of arrested|arrested person|when arrested|if arrested|arrest rights)\b`), "arrested_rights"},
	{regexp.MustCompile(`\b(?:arrest procedure|how arrest works|arrest process)\b`), "arrest_procedure"},
	{regexp.MustCompile(`\b(?:police custody|custody duration|how long.*custody|keep.*custody|remand)\b`), "custody_duration"},
	{regexp.MustCompile(`\b(?:cognizable|non-cognizable)\b`), "cognizable_offence"},

	// Comparisons.
	{regexp.MustCompile(`\b(?:theft.*robbery|robbery.*theft|theft vs robbery|difference.*theft.*robbery)\b`), "theft_vs_robbery"},
	{regexp.MustCompile(`\b(?:bailable.*non-bailable|non-bailable.*bailable|difference.*bailable)\b`), "bailable_vs_nonbailable"},
	{regexp.MustCompile(`\b(?:cognizable.*non-cognizable|non-cognizable.*cognizable|difference.*cognizable)\b`), "cognizable_offence"},
	{regexp.MustCompile(`\b(?:murder.*(?:culpable|homicide)|(?:culpable|homicide).*murder|murder vs (?:culpable|homicide))\b`), "murder_vs_homicide"},
	{regexp.MustCompile(`\bcull?pable homicide\b`), "murder_vs_homicide"},
	{regexp.MustCompile(`\b(?:murder.*homicide|homicide.*murder)\b`), "murder_vs_homicide"},
	{regexp.MustCompile(`\b(?:legal distinction|distinction between).*murder\b`), "murder_vs_homicide"},
	{regexp.MustCompile(`\b(?:article 32.*article 226|article 226.*article 32|32 vs 226|difference.*32.*226|writ.*32.*226)\b`), "article32_vs_226"},
	{regexp.MustCompile(`\b(?:civil.*criminal|criminal.*civil|civil law vs criminal|difference.*civil.*criminal)\b`), "civil_vs_criminal"},
	{regexp.MustCompile(`\b(?:parole.*furlough|furlough.*parole|difference.*parole|parole vs|furlough vs)\b`), "parole_vs_furlough"},
	{regexp.MustCompile(`\b(?:indra sawhney|mandal commission|50.*reservation|reservation.*50|fifty percent)\b`), "case_indra_sawhney"},
	{regexp.MustCompile(`\b(?:article 370|370|jammu|kashmir|special status)\b`), "article_370"},
	{regexp.MustCompile(`\b(?:criminal breach of trust|section 406|406 ipc|breach of trust)\b`), "criminal_breach_of_trust"},
	{regexp.MustCompile(`\b(?:types of writ|5 writs|five writs|all writs)\b`), "writ_types"},

	// Basic legal concepts.
	{regexp.MustCompile(`\b(?:difference|different|distinguish|vs|versus).*(?:law.*act|act.*law)\b`), "law_vs_act"},
	{regexp.MustCompile(`\b(?:what is|explain|define).*(?:difference between|distinction between).*(?:law|act|statute|legislation)\b`), "law_vs_act"},
	{regexp.MustCompile(`\b(?:law|act|statute|code|bill).*(?:meaning|definition|what is|explain)\b`), "law_vs_act"},
	{regexp.MustCompile(`\b(?:types of law|sources of law|hierarchy of law)\b`), "law_vs_act"},

	{regexp.MustCompile(`\b(?:arrest without warrant|police.*arrest.*without)\b`), "cognizable_offence"},

	// Special laws.
	{regexp.MustCompile(`\b(?:pocso|child.*sexual|minor abuse)\b`), "pocso"},
	{regexp.MustCompile(`\b(?:it act|information technology|cyber.*crime|hacking|online fraud)\b`), "cyber_crime"},
	{regexp.MustCompile(`\b(?:consumer.*protection|consumer.*complaint|consumer forum)\b`), "consumer_protection"},
	{regexp.MustCompile(`\b(?:domestic violence|dv act|protection.*women)\b`), "cruelty_by_husband"},
	{regexp.MustCompile(`\b(?:rti|right to information)\b`), "rti"},
	{regexp.MustCompile(`\b(?:legal aid|free legal|nalsa)\b`), "legal_aid"},
	{regexp.MustCompile(`\b(?:pil|public interest litigation)\b`), "pil"},
	{regexp.MustCompile(`\b(?:lok adalat)\b`), "lok_adalat"},
	{regexp.MustCompile(`\b(?:arbitration)\b`), "arbitration"},

	// CrPC sections.
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*125\b`), "crpc_section_125"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*125\s*(?:crpc|cr\.?p\.?c\.?|maintenance)?\b`), "crpc_section_125"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*482\b`), "crpc_section_482"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*482\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_482"},
	{regexp.MustCompile(`\b(?:inherent power|quash fir|quash proceedings)\b`), "crpc_section_482"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*173\b`), "crpc_section_173"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*173\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_173"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*154\b`), "crpc_section_154"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*154\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_154"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*156\b`), "crpc_section_156"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*156\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_156"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*161\b`), "crpc_section_161"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*161\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_161"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*41\b`), "crpc_section_41"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*41\s*(?:crpc|cr\.?p\.?c\.?)\b`), "crpc_section_41"},
	{regexp.MustCompile(`\b(?:crpc|cr\.?p\.?c\.?)\s*(?:section)?\s*167\b`), "crpc_section_167"},
	{regexp.MustCompile(`\b(?:section|sec\.?)\s*167\s*(?:crpc|cr\.?p\.?c\.?)?\b`), "crpc_section_167"},

	// Evidence Act phrasings the earlier block misses, e.g. a bare
	// "confession" or "chain of circumstances".
	{regexp.MustCompile(`\b(?:circumstantial evidence|indirect evidence|chain of circumstances)\b`), "circumstantial_evidence"},
	{regexp.MustCompile(`\b(?:dying declaration|section 32|statement.*dead)\b`), "dying_declaration"},
	{regexp.MustCompile(`\b(?:confession|section 25|section 26|section 27|admission)\b`), "confession_evidence"},

	// Edge cases.
	{regexp.MustCompile(`\b(?:juvenile|minor.*tried|minor.*murder|child.*tried|jjb|juvenile justice)\b`), "juvenile_justice"},
	{regexp.MustCompile(`\b(?:plea bargain|plea deal|mutually satisfactory|plea.?bargaining)\b`), "plea_bargaining"},
	{regexp.MustCompile(`\b(?:suicide.*illegal|attempt.*suicide|section 309|is suicide|decriminali[sz]ed)\b`), "suicide_legality"},
	{regexp.MustCompile(`\b(?:compoundable|compound.*offence|settle.*case|withdraw.*case)\b`), "compoundable_offences"},
	{regexp.MustCompile(`\b(?:hostile witness|witness.*hostile|turn hostile)\b`), "hostile_witness"},
	{regexp.MustCompile(`\b(?:narco.*test|polygraph|lie detector|brain mapping)\b`), "narco_test"},
	{regexp.MustCompile(`\b(?:pardon|reprieve|remission|commutation|mercy petition|article 72)\b`), "pardon_remission"},
	{regexp.MustCompile(`\b(?:double jeopardy|article 20\(?2\)?|twice.*same offence|prosecuted twice)\b`), "double_jeopardy"},

	// Additional constitutional articles.
	{regexp.MustCompile(`\b(?:article 15|discrimination.*prohibited|no discrimination)\b`), "article_15"},
	{regexp.MustCompile(`\b(?:article 16|equality.*employment|public employment)\b`), "article_16"},
	{regexp.MustCompile(`\b(?:article 17|untouchability|abolition.*untouchability)\b`), "article_17"},
	{regexp.MustCompile(`\b(?:article 24|child labour|children.*factories)\b`), "article_24"},
	{regexp.MustCompile(`\b(?:article 29|minorities.*culture|cultural rights)\b`), "article_29"},
	{regexp.MustCompile(`\b(?:article 30|minorities.*education|minority institution)\b`), "article_30"},
	{regexp.MustCompile(`\b(?:article 51a|fundamental duties|duties of citizen)\b`), "article_51a"},

	// Civil matters.
	{regexp.MustCompile(`\b(?:divorce|marriage dissolution|separation)\b`), "divorce"},
	{regexp.MustCompile(`\b(?:property|land dispute)\b`), "property"},
	{regexp.MustCompile(`\b(?:contract|agreement|breach)\b`), "contract"},
	{regexp.MustCompile(`\b(?:maintenance|wife support|child support|alimony)\b`), "maintenance"},

	// Fundamental rights phrasings.
	{regexp.MustCompile(`\b(?:right to equality)\b`), "article_14"},
	{regexp.MustCompile(`\b(?:right to freedom)\b`), "article_19"},
	{regexp.MustCompile(`\b(?:right to life)\b`), "article_21"},
	{regexp.MustCompile(`\b(?:right to education|rte)\b`), "right_to_education"},
	{regexp.MustCompile(`\b(?:right to privacy)\b`), "case_privacy"},
}

// ExtractLegalConcept returns a curated concept key for the query, or empty
// when no concept matched. The query must already be lowercased.
func ExtractLegalConcept(query string) string {
	// The 32-vs-226 comparison wins over bare article number matching.
	if article32vs226Pattern.MatchString(query) {
		return "article32_vs_226"
	}
	if m := articleNumberPattern.FindStringSubmatch(query); m != nil {
		if key, ok := knownArticles[m[1]]; ok {
			return key
		}
		return "constitution"
	}
	for _, rule := range conceptRules {
		if rule.pattern.MatchString(query) {
			return rule.key
		}
	}
	return ""
}

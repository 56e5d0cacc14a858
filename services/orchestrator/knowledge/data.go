// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package knowledge

// Crime type and concept keys with special lookup behavior.
const (
	CrimeMurder      = "murder"
	CrimeBailGeneral = "bail_general"
	ConceptDefault   = "default"
)

// defaultPunishments is the built-in IPC punishment dataset, current as of
// January 2026.
var defaultPunishments = map[string]PunishmentEntry{
	"murder": {
		Section:    "IPC Section 302",
		Title:      "Punishment for Murder",
		Definition: "Whoever commits murder shall be punished with death, or imprisonment for life, and shall also be liable to fine.",
		Punishment: "Death penalty OR Life imprisonment + Fine",
		KeyPoints: []string{
			"Most serious offense under IPC",
			"Intention or knowledge to cause death",
			"Pre-meditation often considered for death penalty",
			"Death penalty reserved for 'rarest of rare' cases",
		},
		AggravatingFactors: []string{
			"Brutal or heinous nature of crime",
			"Multiple murders",
			"Murder of child or helpless person",
			"Murder for ransom or during robbery",
		},
		Guidelines: &CourtGuideline{
			Case:      "Bachan Singh v. State of Punjab (1980) & Machhi Singh v. State of Punjab (1983)",
			Principle: "Death penalty only in rarest of rare cases",
			Test:      "When alternative option is unquestionably foreclosed",
		},
		RelatedSections: []string{"IPC 300 (Definition)", "IPC 304 (Culpable Homicide)"},
		ConvictionRate:  "46.2% (NCRB 2025)",
		AverageSentence: "Life imprisonment (14-20 years actual)",
	},
	"culpable_homicide": {
		Section:    "IPC Section 304",
		Title:      "Punishment for Culpable Homicide Not Amounting to Murder",
		Definition: "Culpable homicide not amounting to murder.",
		Punishment: "Part 1: Life imprisonment OR up to 10 years + Fine. Part 2: Up to 10 years OR Fine OR both.",
		KeyPoints: []string{
			"Lacks pre-meditation or specific intent required for murder",
			"Death caused in sudden fight falls under Part 1",
			"Death by rash or negligent act is IPC 304A",
		},
		RelatedSections: []string{"IPC 299 (Definition)", "IPC 304A (Death by negligence)"},
	},
	"attempt_to_murder": {
		Section:    "IPC Section 307",
		Title:      "Attempt to Murder",
		Definition: "Whoever does any act with intention or knowledge and under circumstances that if he caused death would be guilty of murder.",
		Punishment: "Imprisonment up to 10 years + Fine. If hurt caused: Life imprisonment OR up to 10 years + Fine.",
		KeyPoints: []string{
			"Requires intention or knowledge to kill",
			"Act must be proximate to causing death",
			"More severe if actual hurt caused",
		},
		Examples: []string{
			"Firing gunshot at someone (misses or non-fatal injury)",
			"Poisoning attempt (detected and treated)",
		},
	},
	"murder_definition": {
		Section:    "IPC Section 300",
		Title:      "Definition of Murder",
		Definition: "Culpable homicide is murder if the act is done with the intention of causing death, or bodily injury likely to cause death, or with knowledge that it is likely to cause death.",
		Punishment: "Defined offense; punishment follows IPC Section 302",
		KeyPoints: []string{
			"Exception: grave and sudden provocation",
			"Exception: private defense exceeding lawful limits",
			"Exception: sudden fight without pre-meditation",
		},
		RelatedSections: []string{"IPC 302 (Punishment)", "IPC 299 (Culpable homicide)"},
	},
	"theft": {
		Section:    "IPC Section 379",
		Title:      "Punishment for Theft",
		Definition: "Whoever commits theft shall be punished with imprisonment of either description for a term which may extend to three years, or with fine, or with both.",
		Punishment: "Imprisonment up to 3 years OR Fine OR Both",
		KeyPoints: []string{
			"Bailable offense (can get bail as a matter of right)",
			"Cognizable offense (police can arrest without warrant)",
			"Compoundable with permission of court",
		},
		Bail: &BailProvisions{
			Type:        "Bailable",
			Explanation: "You have RIGHT to bail for simple theft under IPC 379",
			Conditions: []string{
				"Police can grant bail at station itself",
				"Court must grant bail if conditions met",
				"Surety bond may be required",
			},
			Amount: "Typically ₹5,000 - ₹50,000 depending on value stolen",
		},
		RelatedSections: []string{"IPC 378 (Definition of theft)", "IPC 380 (Theft in dwelling house)"},
		ConvictionRate:  "28.4% (NCRB 2025)",
	},
	"robbery": {
		Section:    "IPC Section 392",
		Title:      "Punishment for Robbery",
		Definition: "Whoever commits robbery shall be punished with rigorous imprisonment for a term which may extend to ten years, and shall also be liable to fine.",
		Punishment: "Rigorous imprisonment up to 10 years + Fine",
		KeyPoints: []string{
			"Non-bailable offense (bail at court's discretion)",
			"More serious than theft - involves force or threat",
			"With deadly weapon during daytime: up to 14 years (IPC 397)",
		},
		Bail: &BailProvisions{
			Type:        "Non-Bailable",
			Explanation: "Bail NOT automatic - must convince court",
			Conditions: []string{
				"Show you're not a flight risk",
				"Not likely to tamper with evidence",
				"May require heavy surety",
			},
		},
		RelatedSections: []string{"IPC 390 (Definition)", "IPC 395 (Dacoity)"},
	},
	"rape": {
		Section:    "IPC Section 376",
		Title:      "Punishment for Rape",
		Definition: "Whoever commits rape shall be punished with rigorous imprisonment for a term which shall not be less than ten years, but which may extend to imprisonment for life, and shall also be liable to fine.",
		Punishment: "Min 10 years to Life Imprisonment + Fine",
		KeyPoints: []string{
			"Non-bailable and cognizable offense",
			"Tried in Sessions Court",
			"Victim identity must be protected (IPC 228A)",
		},
		Bail: &BailProvisions{
			Type:        "Non-Bailable",
			Explanation: "Very difficult to get bail. Triple test strictly applied.",
			Conditions: []string{
				"No contact with victim",
				"Surrender of passport",
				"Regular police reporting",
			},
		},
		RelatedSections: []string{"IPC 375 (Definition)", "POCSO Act", "IPC 376D (Gang rape)"},
		ConvictionRate:  "27.4% (NCRB 2025)",
	},
	"cruelty_by_husband": {
		Section:    "IPC Section 498A",
		Title:      "Husband/Relative Subjecting Woman to Cruelty",
		Definition: "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty shall be punished with imprisonment for a term which may extend to three years and shall also be liable to fine.",
		Punishment: "Imprisonment up to 3 years + Fine",
		KeyPoints: []string{
			"Cruelty may be physical or mental",
			"Harassment for dowry included",
			"Non-bailable but bail usually granted by Magistrate",
		},
		Guidelines: &CourtGuideline{
			Case:      "Arnesh Kumar v. State of Bihar (2014)",
			Principle: "No automatic arrest under 498A",
			Test:      "Checklist under CrPC 41(1)(b)(ii) must be filled",
		},
		RelatedSections: []string{"Dowry Prohibition Act", "DV Act (Domestic Violence)"},
		ConvictionRate:  "14% (High acquittal/settlement rate)",
	},
	"assault": {
		Section:    "IPC Section 323",
		Title:      "Punishment for Assault/Voluntarily Causing Hurt",
		Definition: "Whoever voluntarily causes hurt to any person shall be punished.",
		Punishment: "Imprisonment up to 1 year OR Fine up to ₹1,000 OR Both",
		KeyPoints: []string{
			"Section 324: Hurt by dangerous weapon - up to 3 years",
			"Section 325: Grievous hurt - up to 7 years",
			"Simple assault under 323 is bailable",
		},
		Bail: &BailProvisions{
			Type:        "Bailable",
			Explanation: "Right to bail for Section 323; grievous hurt sections are non-bailable",
		},
		RelatedSections: []string{"IPC 324", "IPC 325", "IPC 351 (Assault definition)"},
	},
	"fraud": {
		Section:    "IPC Section 420",
		Title:      "Punishment for Cheating and Fraud",
		Definition: "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
		Punishment: "Imprisonment up to 7 years + Fine (mandatory)",
		KeyPoints: []string{
			"Involves dishonest inducement to deliver property",
			"Cognizable offense",
			"Non-bailable in many states (check local amendments)",
		},
		Bail: &BailProvisions{
			Type:        "Non-Bailable (in most states)",
			Explanation: "Court discretion required; willingness to make restitution helps",
			Conditions: []string{
				"Must show you're not a flight risk",
				"Amount of fraud matters",
			},
		},
		Examples: []string{
			"Fake investment schemes (Ponzi schemes)",
			"Online scams and phishing",
			"Selling fake products as genuine",
		},
		RelatedSections: []string{"IPC 415 (Definition of cheating)", "IPC 417 (Simple cheating)", "IPC 463-471 (Forgery)"},
		ConvictionRate:  "34.7% (NCRB 2025)",
	},
	"kidnapping": {
		Section:    "IPC Section 363",
		Title:      "Punishment for Kidnapping",
		Definition: "Kidnapping any person from India or from lawful guardianship.",
		Punishment: "Imprisonment up to 7 years + Fine",
		KeyPoints: []string{
			"Section 364: Kidnapping for ransom - up to life imprisonment",
			"Section 366: Kidnapping woman to compel marriage - up to 10 years",
			"Cognizable and non-bailable offense",
		},
		Bail: &BailProvisions{
			Type: "Non-Bailable",
		},
		RelatedSections: []string{"IPC 364", "IPC 366", "IPC 367"},
	},
	"molestation": {
		Section:    "IPC Section 354",
		Title:      "Assault or Criminal Force to Woman with Intent to Outrage Her Modesty",
		Definition: "Whoever assaults or uses criminal force to any woman, intending to outrage or knowing it to be likely that he will thereby outrage her modesty.",
		Punishment: "Imprisonment from 1 to 5 years + Fine",
		KeyPoints: []string{
			"Non-bailable and cognizable offense",
			"Related sections cover stalking (354D), voyeurism (354C)",
		},
		Bail: &BailProvisions{
			Type: "Non-Bailable",
		},
		RelatedSections: []string{"IPC 354A (Sexual harassment)", "IPC 354D (Stalking)"},
	},
	"defamation": {
		Section:    "IPC Section 499-500",
		Title:      "Punishment for Defamation",
		Definition: "Making or publishing any imputation concerning any person, intending to harm the reputation of such person.",
		Punishment: "Imprisonment up to 2 years OR Fine OR Both",
		KeyPoints: []string{
			"Both written (libel) and spoken (slander) covered",
			"Truth is a defense if in public interest",
			"Bailable and compoundable offense",
		},
		Bail: &BailProvisions{
			Type: "Bailable",
		},
	},
	"dowry_death": {
		Section:    "IPC Section 304B",
		Title:      "Dowry Death",
		Definition: "Dowry death is when a woman dies within seven years of marriage under abnormal circumstances, and it is shown that she was subjected to cruelty or harassment for dowry.",
		Punishment: "Minimum 7 years imprisonment; maximum life imprisonment",
		KeyPoints: []string{
			"Non-bailable, cognizable, non-compoundable",
			"Presumption under Section 113B Evidence Act against husband/relatives",
		},
		Guidelines: &CourtGuideline{
			Case:      "Shanti v. State of Haryana (1991)",
			Principle: "Presumption as to dowry death applies strictly",
		},
		RelatedSections: []string{"IPC 498A (Cruelty)", "Section 113B Evidence Act", "Dowry Prohibition Act, 1961"},
	},
	"criminal_intimidation": {
		Section:    "IPC Section 506",
		Title:      "Punishment for Criminal Intimidation",
		Definition: "Threatening another with any injury to person, reputation or property with intent to cause alarm.",
		Punishment: "Imprisonment up to 2 years OR Fine OR Both; threat of death or grievous hurt: up to 7 years",
		KeyPoints: []string{
			"Part I (simple threat) is bailable",
			"Part II (threat of death/grievous hurt) is non-bailable",
		},
		Bail: &BailProvisions{
			Type: "Bailable for Part I, Non-Bailable for Part II",
		},
	},
	"sedition": {
		Section:    "IPC Section 124A",
		Title:      "Sedition",
		Definition: "Bringing or attempting to bring hatred, contempt, or disaffection towards the Government.",
		Punishment: "Life imprisonment + Fine OR 3 years + Fine",
		KeyPoints: []string{
			"Non-bailable, non-compoundable, cognizable",
			"Supreme Court stayed sedition cases in 2022 (S.G. Vombatkere case)",
		},
		Guidelines: &CourtGuideline{
			Case:      "Kedar Nath Singh v. State of Bihar (1962)",
			Principle: "Sedition valid but only for incitement to violence",
		},
	},
	"bail_general": {
		Section:    "CrPC Sections 436-439",
		Title:      "Bail Provisions in India",
		Definition: "Bail is the judicial release of an accused person from custody pending trial.",
		Punishment: "Not an offense; procedural provision",
		KeyPoints: []string{
			"Regular bail (CrPC 437/439): granted after arrest",
			"Anticipatory bail (CrPC 438): granted before arrest",
			"Bailable offenses: bail is a RIGHT, granted by police or Magistrate",
			"Non-bailable offenses: bail at court's discretion only",
		},
		Guidelines: &CourtGuideline{
			Case:      "Satender Kumar Antil v. CBI (2022)",
			Principle: "Bail is the rule, jail is the exception",
		},
	},
}

// defaultConcepts is the built-in legal concept dataset. Keys line up with
// the concept slugs the intent classifier emits.
var defaultConcepts = map[string]ConceptEntry{
	"constitution": {
		Title:      "Constitution of India",
		Definition: "The supreme law of India, adopted on 26 Nov 1949 and enacted on 26 Jan 1950.",
		Rights: []string{
			"Right to Equality (Articles 14-18)",
			"Right to Freedom (Articles 19-22)",
			"Right against Exploitation (Articles 23-24)",
			"Right to Freedom of Religion (Articles 25-28)",
			"Cultural and Educational Rights (Articles 29-30)",
			"Right to Constitutional Remedies (Article 32)",
		},
		LandmarkCase: "Kesavananda Bharati v. State of Kerala (1973) - Basic Structure Doctrine",
	},
	"article_14": {
		Title:      "Article 14: Equality Before Law",
		Definition: "The State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India.",
		KeyElements: []string{
			"Equality before Law (no special privilege)",
			"Equal Protection of Laws (like treated alike)",
		},
		LandmarkCase: "E.P. Royappa v. State of Tamil Nadu (1974) - Arbitrariness is antithetical to equality",
	},
	"article_19": {
		Title:      "Article 19: Right to Freedom",
		Definition: "Protection of certain rights regarding freedom of speech, assembly, association, movement, residence and profession.",
		Rights: []string{
			"19(1)(a): Speech and Expression",
			"19(1)(b): Assembly peaceably without arms",
			"19(1)(c): Form associations/unions",
			"19(1)(d): Move freely throughout India",
			"19(1)(g): Practice any profession/trade",
		},
		Restrictions: "Reasonable restrictions under Article 19(2) to 19(6) (sovereignty, public order, decency)",
	},
	"article_20": {
		Title:      "Article 20: Protection in Respect of Conviction for Offences",
		Definition: "Provides three key protections to accused persons.",
		Rights: []string{
			"No ex-post-facto law (20(1))",
			"No double jeopardy (20(2))",
			"No self-incrimination (20(3))",
		},
	},
	"article_21": {
		Title:        "Article 21: Protection of Life and Personal Liberty",
		Definition:   "No person shall be deprived of his life or personal liberty except according to procedure established by law.",
		Scope:        "Expanded by the Supreme Court to include the rights to privacy, dignity, health and education.",
		LandmarkCase: "Maneka Gandhi v. Union of India (1978) - Procedure must be 'just, fair and reasonable'",
	},
	"article_22": {
		Title:      "Article 22: Protection Against Arrest and Detention",
		Definition: "Safeguards for persons who are arrested.",
		Rights: []string{
			"Right to be informed of grounds of arrest",
			"Right to consult legal practitioner",
			"Right to be produced before Magistrate within 24 hours",
		},
		Restrictions: "Preventive detention laws (NSA, UAPA) are excepted",
	},
	"article_32": {
		Title:      "Article 32: Right to Constitutional Remedies",
		Definition: "The 'Heart and Soul' of the Constitution (Dr. Ambedkar). Right to move the Supreme Court for enforcement of Fundamental Rights.",
		KeyElements: []string{
			"Supreme Court can issue 5 types of writs",
			"Habeas Corpus, Mandamus, Prohibition, Certiorari, Quo Warranto",
			"Article 32 is itself a fundamental right",
		},
	},
	"article_226": {
		Title:      "Article 226: Power of High Courts to Issue Writs",
		Definition: "High Courts have power to issue writs for enforcement of fundamental rights and 'any other purpose'.",
		KeyElements: []string{
			"Broader than Article 32 - not limited to fundamental rights",
			"Territorial jurisdiction must exist",
			"Discretionary remedy",
		},
		LandmarkCase: "L. Chandra Kumar v. UOI (1997) - Judicial review under 226 is basic structure",
	},
	"article32_vs_226": {
		Title:      "Difference Between Article 32 and Article 226",
		Definition: "Both articles provide writ jurisdiction, but Article 32 is for the Supreme Court (fundamental rights only) while Article 226 is for High Courts (broader scope).",
		KeyDifferences: []string{
			"COURT: Art 32 - Supreme Court; Art 226 - High Court",
			"SCOPE: Art 32 - Only Fundamental Rights; Art 226 - Any legal right",
			"NATURE: Art 32 - Fundamental Right itself; Art 226 - Discretionary power",
			"Both can issue all 5 writs",
		},
	},
	"article_370": {
		Title:      "Article 370 - Special Status of Jammu & Kashmir (Abrogated)",
		Definition: "Article 370 granted special autonomous status to the state of Jammu and Kashmir, abrogated on 5 August 2019.",
		KeyElements: []string{
			"J&K had separate constitution and flag",
			"Abrogated by Presidential Order on 5 August 2019",
			"J&K reorganized into two Union Territories",
		},
		LandmarkCase: "In Re: Article 370 (2023) - Supreme Court upheld abrogation as constitutional",
	},
	"article_51a": {
		Title:      "Article 51A: Fundamental Duties",
		Definition: "It shall be the duty of every citizen of India (11 duties added by the 42nd and 86th Amendments).",
		KeyElements: []string{
			"Added by 42nd Amendment, 1976",
			"Not enforceable in court (non-justiciable)",
			"Can be considered in interpreting laws",
		},
	},
	"habeas_corpus": {
		Title:      "Writ of Habeas Corpus",
		Definition: "Latin for 'to have the body'. A writ directing a person detaining another to produce the detained person before court and show cause of detention.",
		KeyElements: []string{
			"Most powerful writ for personal liberty",
			"Against unlawful detention by State or private person",
			"Cannot be suspended even during Emergency (44th Amendment)",
		},
		ProcedureOverview: []string{
			"1. File petition in High Court or Supreme Court",
			"2. Court issues notice to detaining authority",
			"3. Authority must justify detention or person is released",
		},
		LandmarkCase: "Rudul Shah v. State of Bihar (1983) - Compensation for illegal detention",
	},
	"writ_types": {
		Title:      "Five Types of Writs Under Article 32 and 226",
		Definition: "The Constitution provides five writs for enforcement of rights through the Supreme Court and High Courts.",
		KeyElements: []string{
			"HABEAS CORPUS: Release from illegal detention",
			"MANDAMUS: Compel public duty performance",
			"CERTIORARI: Quash judicial or quasi-judicial orders",
			"PROHIBITION: Stop proceedings without jurisdiction",
			"QUO WARRANTO: Challenge illegal occupation of office",
		},
	},
	"fir_filing": {
		Title:      "How to File an FIR (Online and Offline)",
		Definition: "First Information Report (FIR) is the first step to initiate criminal proceedings for cognizable offences. FIR can be filed both online (e-FIR) and at a police station.",
		Section:    "CrPC Section 154",
		KeyElements: []string{
			"ZERO FIR: Can file at ANY police station regardless of jurisdiction",
			"Police CANNOT refuse to register FIR for cognizable offence",
			"FREE COPY of FIR is your right under Section 154(2)",
		},
		Steps: []string{
			"Step 1: Go to police station having jurisdiction OR file online",
			"Step 2: Provide written complaint with facts of offence",
			"Step 3: Read and verify FIR content before signing",
			"Step 4: Get free copy of FIR and note the FIR number",
		},
		LandmarkCase: "Lalita Kumari v. State of UP (2014) - FIR mandatory for cognizable offence",
	},
	"crpc_section_482": {
		Title:      "CrPC Section 482 - Inherent Powers of High Court",
		Definition: "Section 482 saves inherent power of the High Court to make orders necessary to prevent abuse of process or secure the ends of justice, including quashing an FIR.",
		Section:    "CrPC Section 482",
		KeyElements: []string{
			"High Court can quash FIR, complaint, or chargesheet",
			"Used when charges are frivolous or no prima facie case exists",
			"Discretionary power - cannot be claimed as a right",
		},
		LandmarkCase: "Bhajan Lal v. State of Haryana (1992) - 7 categories where FIR can be quashed",
	},
	"crpc_section_125": {
		Title:      "CrPC Section 125 - Maintenance of Wives, Children and Parents",
		Definition: "Section 125 provides for maintenance to be paid by a person to his wife, children and parents who are unable to maintain themselves.",
		Section:    "CrPC Section 125",
		KeyElements: []string{
			"Secular provision - applies to all religions",
			"Wife, minor children, and parents entitled",
			"Non-payment: imprisonment up to 1 month or until paid",
		},
		LandmarkCase: "Shah Bano v. Union of India (1985) - Muslim divorced women entitled to maintenance",
	},
	"anticipatory_bail": {
		Title:      "Anticipatory Bail (CrPC Section 438)",
		Definition: "Bail granted BEFORE arrest in anticipation of arrest for a non-bailable offence.",
		Section:    "CrPC Section 438",
		ProcedureOverview: []string{
			"1. File application in Sessions Court or High Court",
			"2. State apprehension of arrest and grounds",
			"3. If granted, accused is protected from arrest subject to conditions",
		},
		LandmarkCase: "Sushila Aggarwal v. State (NCT of Delhi) (2020) - No time limit on anticipatory bail",
	},
	"bail_types": {
		Title:      "Types of Bail in India",
		Definition: "Bail is release from custody on certain conditions pending trial.",
		KeyElements: []string{
			"Regular Bail (CrPC 437/439): after arrest",
			"Anticipatory Bail (CrPC 438): before arrest",
			"Interim Bail: temporary, pending full hearing",
			"Default/Statutory Bail (CrPC 167): if chargesheet not filed in time",
		},
	},
	"bail_in_murder": {
		Title:      "Bail in Murder Case (Non-Bailable Offence)",
		Definition: "Murder is a non-bailable offence. Bail is at the court's discretion and is granted only in exceptional circumstances.",
		Section:    "CrPC Section 437",
		KeyElements: []string{
			"Bail is NOT a matter of right - it is the court's discretion",
			"Court considers nature of accusation, evidence, and flight risk",
			"Apply before Sessions Court first, then High Court",
		},
		LandmarkCase: "Sanjay Chandra v. CBI (2012) - Bail principles in serious offences",
	},
	"arrested_rights": {
		Title:      "Rights of Arrested Person (Article 22 + D.K. Basu Guidelines)",
		Definition: "Arrested persons have fundamental rights including the right to a lawyer, right to inform family, and right to be produced before a Magistrate within 24 hours.",
		Section:    "Article 22 Constitution, CrPC Section 50",
		Rights: []string{
			"Right to consult and be defended by lawyer of choice",
			"Right to inform family/friend of arrest immediately",
			"Must be produced before Magistrate within 24 hours",
			"Right to medical examination",
			"Right against self-incrimination (Article 20(3))",
		},
		LandmarkCase: "D.K. Basu v. State of West Bengal (1997) - 11 guidelines for arrest",
	},
	"private_defense": {
		Title:      "Right of Private Defense (Sections 96-106 IPC)",
		Definition: "IPC Sections 96-106 provide the right of private defense. Section 100 allows causing death in self-defense when there is reasonable apprehension of death or grievous hurt.",
		Section:    "IPC Sections 96-106",
		KeyElements: []string{
			"Nothing is an offence done in exercise of private defense (Section 96)",
			"Force used must be PROPORTIONATE to the threat",
			"Right ceases when the threat ceases",
			"Cannot be used for revenge or retaliation",
		},
		Steps: []string{
			"Step 1: If attacked, use only proportionate force",
			"Step 2: Document injuries immediately (medical report)",
			"Step 3: File FIR about the attack you faced",
			"Step 4: If charged, claim private defense under Sections 96-106",
		},
		LandmarkCase: "Darshan Singh v. State of Punjab (2010) - Proportionality in self-defense",
	},
	"domestic_violence": {
		Title:      "Remedies for Domestic Violence (DV Act 2005 + IPC 498A)",
		Definition: "Victims of domestic violence have civil remedies under the Protection of Women from Domestic Violence Act, 2005 and criminal remedies under IPC Section 498A.",
		Section:    "DV Act 2005, IPC Section 498A",
		KeyElements: []string{
			"Protection Order, Residence Order, Monetary Relief, Custody Order under DV Act",
			"IPC 498A: up to 3 years imprisonment + fine for cruelty",
			"National Women Helpline: 181 (24x7)",
		},
		Steps: []string{
			"Step 1: Approach the District Protection Officer",
			"Step 2: File complaint under DV Act for immediate protection order",
			"Step 3: For criminal action, file FIR under Section 498A",
			"Step 4: Apply for maintenance under DV Act Section 20",
		},
		LandmarkCase: "S.R. Batra v. Taruna Batra (2007) - Right to residence",
	},
	"false_fir_remedies": {
		Title:      "Remedies Against False FIR (Section 482 CrPC + Anticipatory Bail)",
		Definition: "If someone files a false FIR against you, you can seek quashing under Section 482 CrPC and apply for anticipatory bail under Section 438 CrPC to prevent arrest.",
		Section:    "CrPC Sections 482, 438",
		Steps: []string{
			"IMMEDIATE: Apply for anticipatory bail (Section 438)",
			"QUASHING: File petition under Section 482 in High Court",
			"COUNTER: File complaint under Section 211 IPC for false charge",
		},
		LandmarkCase: "State of Haryana v. Bhajan Lal (1992) - Grounds for quashing FIR",
	},
	"cheating_remedies": {
		Title:      "Remedies When Cheated of Money (Section 420 IPC)",
		Definition: "If someone cheats you of money, you can file an FIR under Section 420 IPC at a police station. You can also file a civil suit for money recovery.",
		Section:    "IPC Section 420, 406",
		Steps: []string{
			"Step 1: Collect all evidence (receipts, messages, bank statements)",
			"Step 2: File FIR under Section 420 IPC",
			"Step 3: If police refuse, file complaint before Magistrate (Section 156(3))",
			"Step 4: File civil suit for money recovery",
		},
		KeyElements: []string{
			"Criminal and civil remedies can be pursued simultaneously",
			"Punishment under 420: up to 7 years + fine",
		},
		LandmarkCase: "Hridaya Ranjan v. State of Bihar (2003) - Elements of cheating",
	},
	"drunk_driving": {
		Title:      "Drunk Driving Punishment (Motor Vehicles Act Section 185)",
		Definition: "Under Section 185 of the Motor Vehicles Act, driving under the influence of alcohol is punishable with imprisonment and fine.",
		Section:    "Motor Vehicles Act Section 185",
		KeyElements: []string{
			"Blood alcohol above 30 mg per 100 ml is the threshold",
			"First offence: up to 6 months imprisonment OR ₹10,000 fine OR both",
			"Second offence: up to 2 years imprisonment OR ₹15,000 fine OR both",
			"If death results: charges under Section 304A IPC",
		},
	},
	"cheque_bounce": {
		Title:      "Cheque Bounce (Section 138 NI Act)",
		Definition: "Under Section 138 of the Negotiable Instruments Act, dishonour of a cheque for insufficient funds is a criminal offence punishable with imprisonment up to 2 years.",
		Section:    "Section 138 NI Act",
		Steps: []string{
			"Step 1: Receive the cheque return memo from the bank",
			"Step 2: Send legal notice within 30 days to the drawer",
			"Step 3: Wait 15 days for payment",
			"Step 4: If unpaid, file complaint under Section 138 within 30 days",
		},
		LandmarkCase: "Dashrath Rupsingh Rathod v. State (2014) - Jurisdiction in cheque bounce",
	},
	"online_defamation": {
		Title:      "Online Defamation (IT Act + IPC)",
		Definition: "Online defamation can be prosecuted under Section 499/500 IPC along with the IT Act.",
		Section:    "IPC Section 499/500, IT Act Section 67",
		Steps: []string{
			"Step 1: Take screenshots and preserve evidence",
			"Step 2: File complaint at the local cyber cell or cybercrime.gov.in",
			"Step 3: File civil suit for damages and injunction",
		},
		LandmarkCase: "Shreya Singhal v. Union of India (2015) - Section 66A struck down",
	},
	"trial_duration": {
		Title:      "Duration of Criminal Trial",
		Definition: "Criminal trials in India typically take 3-7 years depending on complexity, proceeding from cognizance through evidence to judgment.",
		Section:    "CrPC Chapters XX-XXIV",
		KeyElements: []string{
			"Investigation: 60-90 days typically",
			"Prosecution evidence: 1-3 years",
			"Right to speedy trial is part of Article 21",
		},
	},
	"threat_remedies": {
		Title:      "Remedies When Threatened (Section 506 IPC)",
		Definition: "Criminal intimidation is punishable under Section 506 IPC. File a police complaint immediately at the nearest police station.",
		Section:    "IPC Section 506",
		Steps: []string{
			"Step 1: File police complaint at the nearest station",
			"Step 2: Preserve all evidence of threats (recordings, screenshots)",
			"Step 3: If police refuse, complain to the SP or Magistrate",
			"Step 4: Apply for a protection order if the threat is serious",
		},
		LandmarkCase: "Manik Taneja v. State of Karnataka (2015) - Criminal intimidation",
	},
	"murder_vs_homicide": {
		Title:      "Difference Between Murder and Culpable Homicide",
		Definition: "Both involve causing death, but differ in intention and punishment.",
		KeyDifferences: []string{
			"MURDER (IPC 302): Death caused with INTENTION to kill or knowledge of certainty of death",
			"CULPABLE HOMICIDE (IPC 304): Death caused with knowledge it's LIKELY to cause death",
			"Murder punishment: Death or Life imprisonment",
			"Culpable Homicide punishment: Up to 10 years or Life",
			"Section 300 exceptions reduce murder to culpable homicide",
		},
	},
	"theft_vs_robbery": {
		Title:      "Difference Between Theft and Robbery",
		Definition: "Theft and robbery are distinct offences under IPC; the key distinction is the use of force.",
		KeyDifferences: []string{
			"THEFT (IPC 379): Taking property without consent, no force used",
			"ROBBERY (IPC 392): Theft plus force, fear or threat",
			"Theft: up to 3 years, bailable",
			"Robbery: up to 10 years, non-bailable",
			"Robbery by 5+ persons becomes dacoity (IPC 395)",
		},
	},
	"bailable_vs_nonbailable": {
		Title:      "Difference Between Bailable and Non-Bailable Offences",
		Definition: "Classification of offences based on the right to bail.",
		KeyDifferences: []string{
			"BAILABLE: Accused has RIGHT to bail - police/court must grant",
			"NON-BAILABLE: Bail is at court's DISCRETION",
			"First Schedule of CrPC lists the classification",
		},
	},
	"civil_vs_criminal": {
		Title:      "Difference Between Civil Law and Criminal Law",
		Definition: "Civil law deals with private disputes seeking compensation; criminal law deals with crimes against society punished by the State.",
		KeyDifferences: []string{
			"PARTIES: Civil - Plaintiff vs Defendant; Criminal - State vs Accused",
			"BURDEN: Civil - Preponderance of probability; Criminal - Beyond reasonable doubt",
			"OUTCOME: Civil - Damages/injunction; Criminal - Imprisonment/fine",
		},
		Note: "The same act can be a civil wrong AND a criminal offence (e.g. defamation).",
	},
	"dowry": {
		Title:      "Dowry Prohibition Act, 1961",
		Definition: "Law prohibiting the giving, taking, or demanding of dowry in connection with marriage.",
		KeyElements: []string{
			"Giving or taking dowry: up to 5 years + ₹15,000 fine",
			"Demanding dowry: 6 months to 2 years + ₹10,000 fine",
			"Dowry death (IPC 304B): 7 years to life imprisonment",
		},
	},
	"hacking": {
		Title:      "Punishment for Hacking under IT Act",
		Definition: "Hacking is unauthorized access to a computer system or network, punishable under the Information Technology Act, 2000.",
		Section:    "IT Act Section 66",
		KeyElements: []string{
			"Section 66: up to 3 years + ₹5 lakh fine",
			"Section 66C: Identity theft - up to 3 years + ₹1 lakh fine",
			"Section 43: Unauthorized access - compensation up to ₹1 crore",
		},
		Note: "Ethical hacking with permission is legal; only unauthorized access is punishable.",
	},
	"cyber_crime": {
		Title:      "Cyber Crimes under IT Act, 2000",
		Definition: "Criminal activities using computers, networks, or the internet.",
		Section:    "Information Technology Act, 2000",
		KeyElements: []string{
			"Section 66: Hacking - up to 3 years + ₹5 lakh fine",
			"Section 66D: Cheating by personation - up to 3 years",
			"Section 67: Obscene content - up to 5 years",
		},
		Steps: []string{
			"1. Report at cybercrime.gov.in",
			"2. File FIR at nearest police station or Cyber Cell",
			"3. Preserve digital evidence",
		},
	},
	"contempt": {
		Title:      "Contempt of Court",
		Definition: "Willful disobedience or disrespect towards court orders or authority.",
		Section:    "Contempt of Courts Act, 1971",
		KeyElements: []string{
			"Civil contempt: disobedience of court orders",
			"Criminal contempt: scandalizing the court",
			"Punishment: up to 6 months imprisonment + ₹2,000 fine",
		},
		LandmarkCase: "In Re: Prashant Bhushan (2020) - Tweets constituting contempt",
	},
	"dying_declaration": {
		Title:      "Dying Declaration (Evidence Act Section 32)",
		Definition: "Statement made by a person as to the cause of death or circumstances of the transaction resulting in death, when the person is dead.",
		Section:    "Evidence Act Section 32(1)",
		KeyElements: []string{
			"Can be oral, written, or by gestures",
			"Declarant need not be under expectation of death (unlike English law)",
			"Can be the SOLE BASIS for conviction if reliable and voluntary",
		},
		LandmarkCase: "Laxman v. State of Maharashtra (2002) - Dying declaration can be sole basis for conviction",
	},
	"hearsay_evidence": {
		Title:      "Hearsay Evidence (Section 60 - Evidence Act)",
		Definition: "Hearsay is second-hand evidence - what a witness heard from someone else rather than what they directly perceived. It is generally inadmissible under Section 60.",
		Section:    "Evidence Act Section 60",
		KeyElements: []string{
			"Oral evidence must be DIRECT",
			"Cannot cross-examine the original source",
			"Exceptions: dying declaration, res gestae, admissions",
		},
	},
	"circumstantial_evidence": {
		Title:      "Circumstantial Evidence (Indirect Evidence)",
		Definition: "Circumstantial evidence proves a fact by inference from other established facts, rather than by direct testimony.",
		KeyElements: []string{
			"Must form a COMPLETE CHAIN pointing only to guilt",
			"Chain must exclude every hypothesis except guilt of accused",
			"Conviction possible on circumstantial evidence alone",
		},
		LandmarkCase: "Sharad Birdhichand Sarda v. State of Maharashtra (1984) - Five conditions for circumstantial evidence",
	},
	"burden_of_proof": {
		Title:      "Burden of Proof (Evidence Act Sections 101-106)",
		Definition: "The obligation to prove a fact lies on the party who asserts it. In criminal cases, the prosecution must prove guilt beyond reasonable doubt.",
		Section:    "Evidence Act Sections 101-106",
		KeyElements: []string{
			"Criminal: beyond reasonable doubt",
			"Civil: preponderance of probability",
			"Exceptions (insanity, private defense): burden on accused",
		},
		LandmarkCase: "Kali Ram v. State of HP (1973) - Prosecution must prove guilt, not accused prove innocence",
	},
	"case_kesavananda": {
		Title:      "Kesavananda Bharati v. State of Kerala (1973)",
		Definition: "The most important case in Indian constitutional history.",
		KeyElements: []string{
			"Established the Basic Structure Doctrine",
			"Parliament cannot alter basic features (democracy, secularism)",
			"Overruled the Golaknath judgment",
		},
	},
	"double_jeopardy": {
		Title:      "Double Jeopardy - Article 20(2)",
		Definition: "No person shall be prosecuted and punished for the same offence more than once.",
		KeyElements: []string{
			"Must have been prosecuted AND punished earlier",
			"Different offences from the same act can be prosecuted",
			"Departmental action alongside criminal action is allowed",
		},
		LandmarkCase: "Maqbool Hussain v. State of Bombay (1953) - Customs proceeding is not 'prosecution'",
	},
	"pardon_remission": {
		Title:      "Difference Between Pardon, Reprieve, Remission, Commutation",
		Definition: "Presidential powers under Article 72 (Governor under Article 161) to grant mercy in criminal cases.",
		KeyDifferences: []string{
			"PARDON: Complete acquittal - offence and conviction wiped out",
			"REPRIEVE: Temporary suspension of sentence",
			"REMISSION: Reducing sentence duration without changing nature",
			"COMMUTATION: Substituting a lesser form of punishment",
		},
		LandmarkCase: "Shatrughan Chauhan v. Union of India (2014) - Delay in mercy petition can commute death to life",
	},
	"juvenile_justice": {
		Title:      "Juvenile Justice - Trial of Minors",
		Definition: "Children in conflict with law are dealt with under the Juvenile Justice (Care and Protection of Children) Act, 2015.",
		KeyElements: []string{
			"Child: person below 18 years",
			"Not tried in regular criminal courts",
			"Children 16-18 CAN be tried as adults for heinous offences",
			"No death penalty or life imprisonment for juveniles",
		},
	},
	"suicide_legality": {
		Title:      "Is Suicide Illegal in India?",
		Definition: "Attempt to suicide was decriminalized by the Mental Healthcare Act, 2017, which effectively nullified Section 309 IPC.",
		KeyElements: []string{
			"MHCA 2017 presumes severe stress, not criminality",
			"Person must receive care and rehabilitation, not prosecution",
			"Abetment to suicide (Section 306 IPC) is still a criminal offence",
		},
	},
	ConceptDefault: {
		Title:      "General Legal Query",
		Definition: "This is a general legal query.",
		Note:       "Ask about punishments, bail, or constitutional articles for curated educational answers.",
	},
}

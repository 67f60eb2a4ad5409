package i18n

var bundles = map[string]map[string]string{
	French:  fr,
	English: en,
}

var fr = map[string]string{
	// Activities and regimes
	"activity.BIC_VENTE":               "Vente de marchandises (BIC)",
	"activity.BIC_SERVICE":             "Prestations de services (BIC)",
	"activity.BNC":                     "Profession libérale (BNC)",
	"tax_regime.MICRO":                 "Micro-entreprise",
	"tax_regime.REEL_SIMPLIFIE":        "Réel simplifié",
	"tax_regime.REEL_NORMAL":           "Réel normal",
	"tax_regime.DECLARATION_CONTROLEE": "Déclaration contrôlée",
	"social_regime.MICRO_SOCIAL":       "Micro-social",
	"social_regime.TNS_CLASSIQUE":      "TNS classique",
	"vat_regime.FRANCHISE":             "Franchise en base de TVA",
	"vat_regime.REEL_SIMPLIFIE_TVA":    "TVA réel simplifié",
	"vat_regime.REEL_NORMAL_TVA":       "TVA réel normal",
	"severity.info":                    "Information",
	"severity.success":                 "Avantage",
	"severity.warning":                 "Attention",
	"severity.error":                   "Incohérence",
	"contribution_base.turnover":       "chiffre d'affaires",
	"contribution_base.profit":         "bénéfice",

	// Result fields
	"result.title":                   "Résultat de la simulation",
	"result.turnover":                "Chiffre d'affaires",
	"result.expenses":                "Charges",
	"result.taxable_profit":          "Bénéfice imposable",
	"result.social_contributions":    "Cotisations sociales",
	"result.contribution_rate":       "Taux de cotisation",
	"result.contribution_base":       "Assiette",
	"result.net_income":              "Revenu net avant impôt",
	"result.flat_rate_deduction":     "Abattement forfaitaire",
	"result.deducted_expenses":       "Charges déduites",
	"result.empty":                   "Saisissez un chiffre d'affaires pour lancer la simulation.",
	"report.configuration":           "Configuration",
	"report.consequences":            "Conséquences",
	"report.alerts":                  "Alertes de seuil",
	"report.thresholds":              "Seuils",
	"report.no_alerts":               "Aucune alerte.",
	"threshold.micro_ceiling":        "Plafond micro-entreprise",
	"threshold.vat_franchise":        "Franchise de TVA",
	"threshold.vat_franchise_base":   "Seuil de franchise de TVA",
	"threshold.vat_majored":          "Seuil majoré de TVA",
	"threshold.vat_actual":           "Plafond TVA réel simplifié",
	"threshold.flat_rate_deduction":  "Abattement forfaitaire",
	"threshold.minimum_deduction":    "Abattement minimum",
	"threshold.micro_social_rate":    "Taux micro-social",
	"threshold.standard_social_rate": "Taux TNS moyen",

	// Comparison
	"compare.title":           "Comparaison des régimes",
	"compare.best":            "Régime le plus favorable : {regime} ({net})",
	"compare.delta":           "{regime} : {delta} par rapport à la configuration actuelle",
	"compare.switch_gain":     "Passer en {regime} augmenterait le revenu net de {delta}.",
	"compare.already_optimal": "La configuration actuelle est déjà la plus favorable.",
	"compare.inconsistent":    "Combinaison incohérente : le micro-social exige le régime micro.",

	// Break-even
	"breakeven.title":             "Point mort",
	"breakeven.base":              "Configuration actuelle",
	"breakeven.alternative":       "Alternative",
	"breakeven.target.expenses":   "Charges à partir desquelles les deux configurations se valent",
	"breakeven.target.turnover":   "Chiffre d'affaires où les deux configurations se valent",
	"breakeven.target.net_income": "Chiffre d'affaires nécessaire pour {net} net",
	"breakeven.better_above":      "{regime} devient plus favorable au-delà de {amount}.",
	"breakeven.better_below":      "{regime} est plus favorable jusqu'à {amount}.",

	// Interactive simulator
	"ui.title":          "Simulateur entreprise individuelle",
	"ui.activity":       "Activité",
	"ui.tax_regime":     "Régime fiscal",
	"ui.social_regime":  "Régime social",
	"ui.vat_regime":     "Régime de TVA",
	"ui.turnover":       "Chiffre d'affaires annuel",
	"ui.expenses":       "Charges annuelles",
	"ui.help.cycle":     "changer",
	"ui.help.navigate":  "naviguer",
	"ui.help.quit":      "quitter",
	"ui.help.language":  "langue",
	"ui.invalid_amount": "Montant invalide",


	// Assumptions
	"assumptions.title":                   "Hypothèses",
	"assumptions.one_year":                "Simulation sur une année civile complète, sans prorata.",
	"assumptions.no_income_tax":           "Le revenu net est calculé avant impôt sur le revenu.",
	"assumptions.flat_rate_floor":         "L'abattement forfaitaire ne peut être inférieur à 305 €.",
	"assumptions.standard_social_average": "Les cotisations TNS sont estimées à un taux moyen de 45 % du bénéfice.",
	"assumptions.liberal_general_scheme":  "Les professions libérales relèvent du régime général SSI (24,6 %).",

	// Consequences
	"consequences.flat_rate_deduction.title":                         "Abattement forfaitaire",
	"consequences.flat_rate_deduction.description":                   "Le bénéfice imposable est le chiffre d'affaires diminué d'un abattement forfaitaire (71 %, 50 % ou 34 % selon l'activité, minimum 305 €).",
	"consequences.simplified_bookkeeping.title":                      "Comptabilité allégée",
	"consequences.simplified_bookkeeping.description":                "Un livre des recettes et, pour la vente, un registre des achats suffisent.",
	"consequences.expenses_not_deductible.title":                     "Charges réelles non déductibles",
	"consequences.expenses_not_deductible.description":               "Vos charges réelles ne sont pas prises en compte : seul l'abattement forfaitaire s'applique.",
	"consequences.actual_expenses_deductible.title":                  "Déduction des charges réelles",
	"consequences.actual_expenses_deductible.description":            "Le bénéfice imposable est le chiffre d'affaires diminué des charges réellement engagées.",
	"consequences.simplified_actual_accounting.title":                "Comptabilité simplifiée",
	"consequences.simplified_actual_accounting.description":          "Bilan et compte de résultat simplifiés, liasse fiscale 2033.",
	"consequences.full_accounting_required.title":                    "Comptabilité complète",
	"consequences.full_accounting_required.description":              "Comptabilité d'engagement complète et liasse fiscale 2050 ; un expert-comptable est souvent nécessaire.",
	"consequences.controlled_declaration_bookkeeping.title":          "Déclaration 2035",
	"consequences.controlled_declaration_bookkeeping.description":    "Tenue d'un livre-journal des recettes et dépenses et d'un registre des immobilisations.",
	"consequences.micro_social_on_turnover.title":                    "Cotisations sur le chiffre d'affaires",
	"consequences.micro_social_on_turnover.description":              "Les cotisations sont un pourcentage du chiffre d'affaires encaissé : pas de chiffre d'affaires, pas de cotisations.",
	"consequences.micro_social_requires_micro.title":                 "Micro-social incompatible",
	"consequences.micro_social_requires_micro.description":           "Le régime micro-social n'est ouvert qu'aux entrepreneurs relevant du régime fiscal micro.",
	"consequences.standard_social_on_profit.title":                   "Cotisations sur le bénéfice",
	"consequences.standard_social_on_profit.description":             "Les cotisations TNS sont calculées sur le bénéfice, environ 45 % en moyenne.",
	"consequences.standard_social_minimum_contributions.title":       "Cotisations minimales",
	"consequences.standard_social_minimum_contributions.description": "Des cotisations minimales restent dues même en l'absence de bénéfice.",
	"consequences.vat_franchise_no_recovery.title":                   "TVA non récupérable",
	"consequences.vat_franchise_no_recovery.description":             "Vous ne facturez pas de TVA et ne pouvez pas récupérer celle payée sur vos achats.",
	"consequences.vat_franchise_invoice_mention.title":               "Mention obligatoire",
	"consequences.vat_franchise_invoice_mention.description":         "Vos factures doivent porter la mention « TVA non applicable, art. 293 B du CGI ».",
	"consequences.vat_must_be_charged.title":                         "Facturation de la TVA",
	"consequences.vat_must_be_charged.description":                   "Vous facturez la TVA à vos clients et la reversez à l'État.",
	"consequences.vat_recoverable.title":                             "TVA déductible",
	"consequences.vat_recoverable.description":                       "La TVA payée sur vos achats et investissements est récupérable.",
	"consequences.vat_simplified_annual_return.title":                "Déclaration annuelle de TVA",
	"consequences.vat_simplified_annual_return.description":          "Une déclaration annuelle CA12 et deux acomptes semestriels.",
	"consequences.vat_normal_monthly_returns.title":                  "Déclarations mensuelles de TVA",
	"consequences.vat_normal_monthly_returns.description":            "Une déclaration CA3 chaque mois.",

	// Threshold alerts
	"alerts.micro_ceiling_approaching":     "Votre chiffre d'affaires approche du plafond micro-entreprise de {ceiling}.",
	"alerts.micro_ceiling_exceeded":        "Votre chiffre d'affaires dépasse le plafond micro-entreprise de {ceiling} : le régime micro n'est plus applicable.",
	"alerts.vat_franchise_approaching":     "Votre chiffre d'affaires approche du seuil de franchise de TVA de {ceiling}.",
	"alerts.vat_franchise_exceeded":        "Seuil de franchise de TVA de {ceiling} dépassé : la franchise est perdue au 1er janvier de l'année suivante.",
	"alerts.vat_franchise_majore_exceeded": "Seuil majoré de {ceiling} dépassé : la TVA est due dès le premier jour du dépassement.",
	"alerts.vat_simplified_exceeded":       "Le plafond du réel simplifié de TVA ({ceiling}) est dépassé : passage au réel normal.",
	"alerts.micro_regime_reachable":        "Votre chiffre d'affaires permet le régime micro-entreprise (plafond {ceiling}).",
	"alerts.vat_franchise_reachable":       "Votre chiffre d'affaires permet la franchise en base de TVA (seuil {ceiling}).",
}

var en = map[string]string{
	"activity.BIC_VENTE":               "Sale of goods (BIC)",
	"activity.BIC_SERVICE":             "Services (BIC)",
	"activity.BNC":                     "Liberal profession (BNC)",
	"tax_regime.MICRO":                 "Micro-enterprise",
	"tax_regime.REEL_SIMPLIFIE":        "Simplified actual",
	"tax_regime.REEL_NORMAL":           "Normal actual",
	"tax_regime.DECLARATION_CONTROLEE": "Controlled declaration",
	"social_regime.MICRO_SOCIAL":       "Micro-social",
	"social_regime.TNS_CLASSIQUE":      "Standard self-employed",
	"vat_regime.FRANCHISE":             "VAT franchise",
	"vat_regime.REEL_SIMPLIFIE_TVA":    "Simplified actual VAT",
	"vat_regime.REEL_NORMAL_TVA":       "Normal actual VAT",
	"severity.info":                    "Information",
	"severity.success":                 "Benefit",
	"severity.warning":                 "Warning",
	"severity.error":                   "Inconsistency",
	"contribution_base.turnover":       "turnover",
	"contribution_base.profit":         "profit",

	"result.title":                   "Simulation result",
	"result.turnover":                "Turnover",
	"result.expenses":                "Expenses",
	"result.taxable_profit":          "Taxable profit",
	"result.social_contributions":    "Social contributions",
	"result.contribution_rate":       "Contribution rate",
	"result.contribution_base":       "Assessed on",
	"result.net_income":              "Net income before tax",
	"result.flat_rate_deduction":     "Flat-rate deduction",
	"result.deducted_expenses":       "Deducted expenses",
	"result.empty":                   "Enter a turnover to run the simulation.",
	"report.configuration":           "Configuration",
	"report.consequences":            "Consequences",
	"report.alerts":                  "Threshold alerts",
	"report.thresholds":              "Thresholds",
	"report.no_alerts":               "No alerts.",
	"threshold.micro_ceiling":        "Micro-enterprise ceiling",
	"threshold.vat_franchise":        "VAT franchise",
	"threshold.vat_franchise_base":   "VAT franchise threshold",
	"threshold.vat_majored":          "Higher VAT threshold",
	"threshold.vat_actual":           "Simplified VAT ceiling",
	"threshold.flat_rate_deduction":  "Flat-rate deduction",
	"threshold.minimum_deduction":    "Minimum deduction",
	"threshold.micro_social_rate":    "Micro-social rate",
	"threshold.standard_social_rate": "Average self-employed rate",

	"compare.title":           "Regime comparison",
	"compare.best":            "Most favourable regime: {regime} ({net})",
	"compare.delta":           "{regime}: {delta} compared with the current configuration",
	"compare.switch_gain":     "Switching to {regime} would raise net income by {delta}.",
	"compare.already_optimal": "The current configuration is already the most favourable.",
	"compare.inconsistent":    "Inconsistent combination: micro-social requires the micro tax regime.",

	// Break-even
	"breakeven.title":             "Break-even",
	"breakeven.base":              "Current configuration",
	"breakeven.alternative":       "Alternative",
	"breakeven.target.expenses":   "Expenses at which both configurations are equal",
	"breakeven.target.turnover":   "Turnover at which both configurations are equal",
	"breakeven.target.net_income": "Turnover needed for {net} net",
	"breakeven.better_above":      "{regime} becomes more favourable above {amount}.",
	"breakeven.better_below":      "{regime} is more favourable up to {amount}.",

	"ui.title":          "Sole-proprietorship simulator",
	"ui.activity":       "Activity",
	"ui.tax_regime":     "Tax regime",
	"ui.social_regime":  "Social regime",
	"ui.vat_regime":     "VAT regime",
	"ui.turnover":       "Annual turnover",
	"ui.expenses":       "Annual expenses",
	"ui.help.cycle":     "change",
	"ui.help.navigate":  "move",
	"ui.help.quit":      "quit",
	"ui.help.language":  "language",
	"ui.invalid_amount": "Invalid amount",


	"assumptions.title":                   "Assumptions",
	"assumptions.one_year":                "One full calendar year, no proration.",
	"assumptions.no_income_tax":           "Net income is computed before income tax.",
	"assumptions.flat_rate_floor":         "The flat-rate deduction is never below €305.",
	"assumptions.standard_social_average": "Self-employed contributions are estimated at an average 45% of profit.",
	"assumptions.liberal_general_scheme":  "Liberal professions are under the general SSI scheme (24.6%).",

	"consequences.flat_rate_deduction.title":                         "Flat-rate deduction",
	"consequences.flat_rate_deduction.description":                   "Taxable profit is turnover minus a flat-rate deduction (71%, 50% or 34% depending on the activity, at least €305).",
	"consequences.simplified_bookkeeping.title":                      "Light bookkeeping",
	"consequences.simplified_bookkeeping.description":                "A receipts ledger, plus a purchase register for sales of goods, is enough.",
	"consequences.expenses_not_deductible.title":                     "Actual expenses not deductible",
	"consequences.expenses_not_deductible.description":               "Your actual expenses are ignored: only the flat-rate deduction applies.",
	"consequences.actual_expenses_deductible.title":                  "Actual expenses deductible",
	"consequences.actual_expenses_deductible.description":            "Taxable profit is turnover minus the expenses actually incurred.",
	"consequences.simplified_actual_accounting.title":                "Simplified accounts",
	"consequences.simplified_actual_accounting.description":          "Simplified balance sheet and income statement, form 2033.",
	"consequences.full_accounting_required.title":                    "Full accounting",
	"consequences.full_accounting_required.description":              "Full accrual accounting and form 2050; an accountant is usually needed.",
	"consequences.controlled_declaration_bookkeeping.title":          "Form 2035",
	"consequences.controlled_declaration_bookkeeping.description":    "Keep a receipts and expenses journal and a fixed-asset register.",
	"consequences.micro_social_on_turnover.title":                    "Contributions on turnover",
	"consequences.micro_social_on_turnover.description":              "Contributions are a percentage of collected turnover: no turnover, no contributions.",
	"consequences.micro_social_requires_micro.title":                 "Micro-social not allowed",
	"consequences.micro_social_requires_micro.description":           "The micro-social scheme is only open to businesses under the micro tax regime.",
	"consequences.standard_social_on_profit.title":                   "Contributions on profit",
	"consequences.standard_social_on_profit.description":             "Self-employed contributions are assessed on profit, about 45% on average.",
	"consequences.standard_social_minimum_contributions.title":       "Minimum contributions",
	"consequences.standard_social_minimum_contributions.description": "Minimum contributions are due even without any profit.",
	"consequences.vat_franchise_no_recovery.title":                   "VAT not recoverable",
	"consequences.vat_franchise_no_recovery.description":             "You do not charge VAT and cannot recover the VAT paid on purchases.",
	"consequences.vat_franchise_invoice_mention.title":               "Mandatory invoice notice",
	"consequences.vat_franchise_invoice_mention.description":         "Invoices must state \"TVA non applicable, art. 293 B du CGI\".",
	"consequences.vat_must_be_charged.title":                         "VAT charged",
	"consequences.vat_must_be_charged.description":                   "You charge VAT to customers and pay it over to the State.",
	"consequences.vat_recoverable.title":                             "VAT recoverable",
	"consequences.vat_recoverable.description":                       "VAT paid on purchases and investments can be recovered.",
	"consequences.vat_simplified_annual_return.title":                "Annual VAT return",
	"consequences.vat_simplified_annual_return.description":          "One annual CA12 return and two half-yearly instalments.",
	"consequences.vat_normal_monthly_returns.title":                  "Monthly VAT returns",
	"consequences.vat_normal_monthly_returns.description":            "A CA3 return every month.",

	"alerts.micro_ceiling_approaching":     "Your turnover is close to the micro-enterprise ceiling of {ceiling}.",
	"alerts.micro_ceiling_exceeded":        "Your turnover is above the micro-enterprise ceiling of {ceiling}: the micro regime no longer applies.",
	"alerts.vat_franchise_approaching":     "Your turnover is close to the VAT franchise threshold of {ceiling}.",
	"alerts.vat_franchise_exceeded":        "VAT franchise threshold of {ceiling} exceeded: the franchise ends on 1 January next year.",
	"alerts.vat_franchise_majore_exceeded": "Higher threshold of {ceiling} exceeded: VAT is due from the first day it was crossed.",
	"alerts.vat_simplified_exceeded":       "The simplified VAT ceiling ({ceiling}) is exceeded: normal actual VAT applies.",
	"alerts.micro_regime_reachable":        "Your turnover qualifies for the micro-enterprise regime (ceiling {ceiling}).",
	"alerts.vat_franchise_reachable":       "Your turnover qualifies for the VAT franchise (threshold {ceiling}).",
}

package repository

import "legal-chatbot/internal/models"

// SeedCorpus returns the built-in North Macedonian legal corpus used by
// the in-memory backend and by cmd/seed to populate Postgres.
func SeedCorpus() []models.Document {
	return []models.Document{
		{
			ID:       1,
			Title:    "Закон за Данок На Додадена Вредност",
			Content:  "Член 1: Со овој закон се уредува оданочувањето на потрошувачката со данок на додадена вредност (во натамошниот текст: ДДВ), како општ данок на потрошувачката кој се пресметува и плаќа во сите фази на производството и трговијата, како и во целокупниот услужен сектор. Член 2: ДДВ се пресметува со примена на пропорционални даночни стапки и тоа: општа даночна стапка од 18% и повластена даночна стапка од 5%.",
			Year:     2023,
			Language: "mk",
			Category: "Taxation",
			IsActive: true,
		},
		{
			ID:       2,
			Title:    "Value Added Tax Law",
			Content:  "Article 1: This law regulates the taxation of consumption with value added tax (hereinafter: VAT), as a general consumption tax that is calculated and paid in all stages of production and trade, as well as in the entire service sector. Article 2: VAT is calculated by applying proportional tax rates, specifically: general tax rate of 18% and preferential tax rate of 5%.",
			Year:     2023,
			Language: "en",
			Category: "Taxation",
			IsActive: true,
		},
		{
			ID:       3,
			Title:    "Закон за Корпорации",
			Content:  "Член 1: Овој закон ги регулира основањето, организирањето и функционирањето на трговските друштва. Член 2: Трговско друштво може да биде основано како: јавно трговско друштво, командитно друштво, друштво со ограничена одговорност, акционерско друштво и командитно друштво со акции. Член 3: Трговските друштва се правни лица кои самостојно настапуваат во правниот промет.",
			Year:     2022,
			Language: "mk",
			Category: "Corporate Law",
			IsActive: true,
		},
		{
			ID:       4,
			Title:    "Corporate Law",
			Content:  "Article 1: This law regulates the establishment, organization, and functioning of business companies. Article 2: A business company can be established as: public trading company, limited partnership, limited liability company, joint-stock company, and limited partnership with shares. Article 3: Business companies are legal entities that act independently in legal transactions.",
			Year:     2022,
			Language: "en",
			Category: "Corporate Law",
			IsActive: true,
		},
		{
			ID:       5,
			Title:    "Закон за Данок На Додадена Вредност (Стар)",
			Content:  "Член 1: Со овој закон се уредува оданочувањето на потрошувачката со данок на додадена вредност (во натамошниот текст: ДДВ), како општ данок на потрошувачката. Член 2: ДДВ се пресметува со примена на пропорционални даночни стапки и тоа: општа даночна стапка од 15% и повластена даночна стапка од 5%.",
			Year:     2010,
			Language: "mk",
			Category: "Taxation",
			IsActive: true,
		},
		{
			ID:       6,
			Title:    "Закон за Работни Односи",
			Content:  "Член 1: Со овој закон се уредуваат работните односи меѓу работниците и работодавачите кои се воспоставуваат со склучување на договор за вработување. Член 5: Работникот има право на плата, безбедност при работа, и дневен, неделен и годишен одмор.",
			Year:     2021,
			Language: "mk",
			Category: "Labor Law",
			IsActive: true,
		},
		{
			ID:       7,
			Title:    "Labor Relations Law",
			Content:  "Article 1: This law regulates labor relations between workers and employers that are established by concluding an employment contract. Article 5: The worker has the right to salary, safety at work, and daily, weekly and annual leave.",
			Year:     2021,
			Language: "en",
			Category: "Labor Law",
			IsActive: true,
		},
	}
}

package model

import "strconv"

// BuildRecord validates the five required record fields and coerces the
// count fields, which arrive as strings from both the form and CSV rows.
// It returns a ValidationError when a field is missing or a count is not
// numeric. No relation between deaths and cases is enforced.
func BuildRecord(location, cases, deaths, date, region string) (DengueRecord, error) {
	fields := map[string]string{
		"location": location,
		"cases":    cases,
		"deaths":   deaths,
		"date":     date,
		"region":   region,
	}
	for _, name := range []string{"location", "cases", "deaths", "date", "region"} {
		if fields[name] == "" {
			return DengueRecord{}, &ValidationError{Field: name, Reason: "required"}
		}
	}

	caseCount, err := strconv.Atoi(cases)
	if err != nil {
		return DengueRecord{}, &ValidationError{Field: "cases", Reason: "must be a number"}
	}
	deathCount, err := strconv.Atoi(deaths)
	if err != nil {
		return DengueRecord{}, &ValidationError{Field: "deaths", Reason: "must be a number"}
	}

	return DengueRecord{
		Location: location,
		Cases:    caseCount,
		Deaths:   deathCount,
		Date:     date,
		Region:   region,
	}, nil
}

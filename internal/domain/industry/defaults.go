package industry

// Defaults is the built-in reference table seeded into the database on first
// boot. Operators may extend the stored table afterwards; the seed never
// overwrites existing rows.
func Defaults() Table {
	return Table{
		{
			ID:   "tech",
			Name: "Technology",
			Specializations: []string{
				"Software Development",
				"Data Science",
				"Cybersecurity",
				"Cloud Computing",
				"DevOps",
				"Product Management",
			},
		},
		{
			ID:   "finance",
			Name: "Finance",
			Specializations: []string{
				"Investment Banking",
				"Risk Management",
				"Financial Analysis",
				"Accounting",
				"Fintech",
			},
		},
		{
			ID:   "healthcare",
			Name: "Healthcare",
			Specializations: []string{
				"Clinical Practice",
				"Health Informatics",
				"Pharmaceuticals",
				"Medical Devices",
			},
		},
		{
			ID:   "education",
			Name: "Education",
			Specializations: []string{
				"Teaching",
				"Curriculum Design",
				"Educational Technology",
				"Administration",
			},
		},
		{
			ID:   "marketing",
			Name: "Marketing",
			Specializations: []string{
				"Digital Marketing",
				"Content Strategy",
				"Brand Management",
				"Market Research",
			},
		},
		{
			ID:   "manufacturing",
			Name: "Manufacturing",
			Specializations: []string{
				"Process Engineering",
				"Quality Assurance",
				"Supply Chain",
				"Operations Management",
			},
		},
	}
}

package content

// Sample returns a deterministic three-section data set used when no CMS
// export is available. IDs and asset refs are stable so tests and demos
// can rely on them.
func Sample() Data {
	return Data{
		Sections: []Section{
			{
				ID:         "craft",
				Heading:    "Built by hand",
				Subheading: "Every piece starts at the bench",
				Body: []Block{
					{Style: "normal", Spans: []Span{
						{Text: "From raw boards to finished joinery, each design is cut, fitted, and finished in the shop."},
					}},
				},
				Background: Image{Ref: "image-craft-hero", Alt: "Workbench with hand tools"},
				Order:      1,
			},
			{
				ID:         "materials",
				Heading:    "Honest materials",
				Subheading: "Hardwood, steel, and nothing hidden",
				Body: []Block{
					{Style: "normal", Spans: []Span{
						{Text: "We source domestic hardwood and leave the grain visible", Marks: []string{"strong"}},
						{Text: " — what you see is the structure itself."},
					}},
				},
				Background: Image{Ref: "image-materials-hero", Alt: "Stacked walnut boards"},
				Order:      2,
			},
			{
				ID:         "delivered",
				Heading:    "Delivered finished",
				Subheading: "Installed and leveled in your space",
				Body: []Block{
					{Style: "normal", Spans: []Span{
						{Text: "Delivery and installation are part of every commission."},
					}},
				},
				Background: Image{Ref: "image-delivered-hero", Alt: "Finished table in a sunlit room"},
				Order:      3,
			},
		},
		Config: Config{}.Normalize(),
	}
}

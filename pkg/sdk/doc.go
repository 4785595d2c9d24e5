// Package econpath embeds the econpath catalog and self-assessment engine
// in a Go program without running the HTTP server.
//
//	client, _ := econpath.New()
//	books, _ := client.Catalogs().Filter(ctx, "books",
//	    econpath.Select("category", "قياس اقتصادي"),
//	    econpath.Select("level", "متقدم"),
//	)
//	report, _ := client.Assess(ctx,
//	    econpath.Rating{Skill: "SQL", Value: 30},
//	    econpath.Rating{Skill: "ML", Value: 85},
//	)
//
// Catalogs are the built-in dataset unless WithCatalogFS points elsewhere.
package econpath

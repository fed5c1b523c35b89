// Package dochub provides an embedded Go client for the DocumentHub
// catalog: a faceted, locale-aware document registry backed by Redis
// (or an in-process store for tests and single-node deployments).
//
// The client wires the catalog services directly over a database
// connection, without the HTTP server:
//
//	client, _ := dochub.New(ctx, dochub.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	doc, _ := client.Documents().Create(ctx, dochub.NewDocument{
//	    Title:      "Annual Budget",
//	    Department: "Admin & Resources Department",
//	    Ministry:   "Fellowship Ministry",
//	    DocType:    "Budget Report",
//	    Status:     "Approved",
//	    Year:       2026,
//	})
//
// Searches are composed with a fluent builder. Facet selections are
// exact matches; an empty query orders by recency instead of relevance:
//
//	hits, _ := client.Search().
//	    Query("budget").
//	    Department("Admin & Resources Department").
//	    Year(2026).
//	    Locale("zh-Hant").
//	    Do(ctx)
package dochub

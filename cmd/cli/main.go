// Interactive recommendation shell over the same engine the API serves.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"venuefinder/internal/adapters/observability"
	"venuefinder/internal/app"
	"venuefinder/internal/catalog"
	"venuefinder/internal/domain"
	"venuefinder/internal/ingest"
	"venuefinder/internal/knowledge"
	"venuefinder/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger("dev")

	kb, err := knowledge.Load(cfg.DefaultCity)
	if err != nil {
		log.Fatal().Err(err).Msg("load city knowledge failed")
	}

	store := catalog.New(kb.DefaultCity())
	loader := ingest.NewLoader(kb)
	dining, lodging, err := loader.Load(context.Background(), cfg.DiningCSV, cfg.LodgingCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset ingestion failed")
	}
	store.Swap(dining, lodging)

	rec := app.NewRecommender(kb, store, nil, 0)

	fmt.Println("Multi-City Venue Finder")
	fmt.Println("Examples:")
	fmt.Println("- 'budget restaurants in Mumbai'")
	fmt.Println("- 'best biryani places in Hyderabad'")
	fmt.Println("- 'luxury hotels in Delhi'")
	fmt.Println("Type 'quit' to exit.")
	fmt.Println()

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("What are you looking for? ")
		if !sc.Scan() {
			break
		}
		q := strings.TrimSpace(sc.Text())
		if q == "" {
			fmt.Println("Please enter a query!")
			continue
		}
		if q == "quit" || q == "exit" || q == "bye" {
			break
		}

		out, err := rec.Recommend(context.Background(), q, cfg.ResultLimit)
		if err != nil {
			fmt.Printf("An error occurred: %v\n", err)
			continue
		}
		printRecommendation(out)
	}
	fmt.Println("Thanks for using the Venue Finder!")
}

func printRecommendation(out domain.Recommendation) {
	if len(out.Results) == 0 {
		fmt.Println("No recommendations found. Try a different query or location!")
		return
	}

	fmt.Printf("\nFound %d Recommendations\n", len(out.Results))
	fmt.Printf("City: %s\n", titleCase(out.City))
	if out.Preferences.BudgetOnly {
		fmt.Println("Preference: Budget")
	} else if out.Preferences.ShowPremium {
		fmt.Println("Preference: Premium")
	}
	fmt.Println()

	for i, r := range out.Results {
		kind := "Hotel"
		if r.Kind == domain.KindDining {
			kind = "Restaurant"
		}
		fmt.Printf("%d. %s (%s)\n", i+1, r.Name, kind)
		fmt.Printf("   Location: %s\n", r.LocationText)
		fmt.Printf("   City: %s\n", titleCase(r.City))
		fmt.Printf("   Rating: %g/5\n", r.Rating)
		if r.Kind == domain.KindDining {
			fmt.Printf("   Cost: Rs %d for two\n", r.Price)
			fmt.Printf("   Cuisine: %s\n", r.CuisineText)
		} else {
			fmt.Printf("   Price: Rs %d per night\n", r.Price)
			fmt.Printf("   Category: %d star\n", r.StarRating)
		}
		budget := "No"
		if r.IsBudget {
			budget = "Yes"
		}
		fmt.Printf("   Budget Friendly: %s\n\n", budget)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Package hunter provides a Go client for the Hunter API (https://hunter.io),
// an email discovery and verification service.
//
// The client covers domain search, email finder and email verifier, plus the
// account, email count and leads endpoints. Every call authenticates with the
// API key passed to New, or with the HUNTER_API_KEY environment variable.
//
// Basic usage:
//
//	client, err := hunter.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find email addresses for a domain
//	resp, err := client.DomainSearch(ctx, &hunter.DomainSearchParams{
//	    Domain: "stripe.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, email := range resp.Data.Emails {
//	    fmt.Println(email.Value, email.Confidence)
//	}
//
// Failed API calls return typed errors that work with errors.Is:
//
//	if errors.Is(err, hunter.ErrUnauthorized) {
//	    // The API key was rejected
//	}
package hunter

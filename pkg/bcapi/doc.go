// Package bcapi provides types, interfaces, and helpers for working with the
// Dynamics 365 Business Central v2.0 API.
//
// # Overview
//
// The bcapi package defines the domain types (e.g., Company, Customer, Item,
// SalesOrder) and the interfaces for resource-oriented clients (e.g.,
// CustomersClient, ItemsClient). A concrete implementation of these clients
// is provided by the bcclient package, which wires configuration, transport,
// and Entra ID authentication. Most consumers should import bcclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/bcapi-client/pkg/bcapi"
//	  "github.com/fivetwenty-io/bcapi-client/pkg/bcclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := bcclient.New(&bcapi.Config{
//	    TenantID:     "00000000-0000-0000-0000-000000000000",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  cli.SetEnvironment("Production")
//	  if err := cli.SetCompany(ctx, "CRONUS USA, Inc."); err != nil { log.Fatal(err) }
//
//	  customers, err := cli.Customers().List(ctx, bcapi.NewQueryParams().WithTop(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Scope
//
// Every request is addressed inside a tenant → environment → company scope.
// The scope lives on the client instance: SetEnvironment and SetCompany pin
// it, and subsequent calls fail with a sentinel error naming the missing
// setup step if a required part of the scope is absent. SetCompany accepts
// either a company id or a display name and resolves the other half, so both
// are always set together.
//
// # Partial updates
//
// Create and update request types use pointer fields. A nil field is never
// serialized, so the service leaves it untouched; a pointer to the empty
// string is serialized and clears the field. For extension APIs whose schema
// is not known at compile time, FieldSet carries an ordered set of explicitly
// bound field/value pairs and marshals to exactly those keys.
//
// # Errors
//
// API errors are represented by APIError and ErrorResponse, carrying the
// upstream OData code and message verbatim. Helpers such as IsNotFound and
// IsUnauthorized make it easy to branch on common cases. Missing-scope and
// missing-credential failures are sentinel errors raised before any network
// call.
package bcapi

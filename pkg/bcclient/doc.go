// Package bcclient provides the primary entry point for constructing a
// Business Central API client that implements the bcapi.Client interface.
//
// It layers configuration, HTTP transport, and Entra ID authentication on
// top of the resource interfaces and types defined in the bcapi package.
// Most applications should import bcclient to build a client, then pin the
// environment and company and use the resource-specific clients, for
// example Customers(), Items(), SalesOrders().
//
// Quick start
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
//
//	  cli, err := bcclient.NewWithClientCredentials(
//	    "", // default endpoint
//	    "tenant-guid", "app-client-id", "app-client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  cli.SetEnvironment("Production")
//
//	  if err := cli.SetCompany(ctx, "CRONUS USA, Inc."); err != nil { log.Fatal(err) }
//
//	  customers, err := cli.Customers().List(ctx, bcapi.NewQueryParams().WithTop(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// A pre-acquired bearer token works too:
//
//	cli, err := bcclient.NewWithToken("https://api.businesscentral.dynamics.com", "eyJhbGciOi...")
package bcclient

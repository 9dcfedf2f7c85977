// Package dummyjson provides the HTTP gateway to the DummyJSON recipes API.
//
// # Overview
//
// The gateway turns one logical request into exactly one GET call and returns
// either validated data or a classified failure. It holds no state beyond its
// configuration: no caching, no retries.
//
// # Architecture
//
//   - client.go: Gateway interface, Client, request construction and decoding
//   - types.go: Recipe and Page, mirroring the API schema
//   - errors.go: the Error value and its Kind sentinels
//
// # API Endpoints
//
//   - GET {base}/recipes?limit={n}&skip={m}: plain listing
//   - GET {base}/recipes/search?q={term}&limit={n}&skip={m}: search
//   - GET {base}/recipes/{id}: single recipe
//
// A query that is empty after trimming whitespace selects the plain listing.
// Query parameters are built with url.Values, so the search term is escaped.
//
// # Client Usage
//
//	client, err := dummyjson.NewClient("", dummyjson.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	page, err := client.ListRecipes(ctx, 0, 10, "pasta")
//	recipe, err := client.GetRecipe(ctx, page.Recipes[0].ID)
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json and User-Agent: pantry/0.1
//   - Carry a fresh ULID in X-Request-ID; the same id is attached to the slog
//     context so request and response log lines correlate
//   - Time out after 10 seconds unless WithTimeout says otherwise
//
// # Error Handling
//
// Every failure is an *Error with a Kind:
//
//   - KindTransport: the request could not be built or executed, or the
//     status was outside 2xx. Status holds the HTTP code when one was seen
//     and the message names it ("GET /recipes returned status 500").
//   - KindShape: the body was not JSON, or it broke the structural contract.
//     A page must carry a "recipes" array ("invalid response format"); a
//     recipe must carry a positive id, a name, and an image ("invalid recipe
//     data"). Invalid arguments (negative offset, zero limit or id) are also
//     reported as shape errors without touching the network.
//
// Use errors.Is(err, dummyjson.ErrTransport) or errors.Is(err,
// dummyjson.ErrShape) to branch on the class, and StatusOf(err) to read the
// status code.
//
// # Testing
//
// Consumers depend on the Gateway interface, so tests substitute a fake.
// The Client itself is tested against httptest servers.
package dummyjson

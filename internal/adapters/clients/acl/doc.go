// Package acl is the boundary between the content repository's HTTP API and
// the rest of the module.
//
// Each endpoint client embeds [BaseAdapter] and exposes one method per
// repository endpoint. A method validates its input, builds the request with
// [RequestBuilder], runs it through an [Executor] under one fixed
// [domain.Kind], and normalizes the response with the jsonvalue package.
//
//	exec, _ := clients.NewExecutor(clients.ExecutorConfig{Transport: client})
//	requests, _ := acl.NewRequestBuilder("http://repo:8080/api", "assets")
//	buckets := acl.NewBucketClient(exec, requests)
//
//	meta, err := buckets.Metadata(ctx)
//	if errors.Is(err, domain.KindFetchingBucket) { ... }
//
// # Error Handling
//
// Every error returned by an endpoint client is a *domain.ClientError:
//   - invalid input raises a validation kind before any request is sent
//   - a status other than 200 or 201 carries the URL and repository message
//   - a transport failure carries the URL and the cause
//   - a body that is not JSON carries the URL and the parse error
package acl

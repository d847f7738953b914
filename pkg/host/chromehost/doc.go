// Package chromehost runs the environment probe inside a real Chrome instance
// driven over the DevTools protocol.
//
// Every host primitive is evaluated as a small JavaScript expression in the
// page. Elements created by the probe live in a registry on the page's window
// object and are referenced from Go by index; the registry is removed once the
// probe finishes.
//
//	report, err := chromehost.Detect(ctx, chromehost.Config{
//		URL: "https://example.com",
//	})
//
// Unlike the in-memory hosts, the scrollbar width reported here is the one
// Chrome actually lays out.
package chromehost

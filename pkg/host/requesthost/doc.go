// Package requesthost runs the environment probe on the server, from the
// headers of an incoming HTTP request.
//
// New maps the request onto an htmlhost.Host: the User-Agent header becomes
// navigator.userAgent, navigator.appVersion is derived the way browsers derive
// it (the UA without its "Mozilla/" prefix), navigator.platform comes from the
// UA device token or the Sec-CH-UA-Platform client hint, and
// "Sec-CH-UA-Mobile: ?1" is treated as touch support.
//
// Only the user-agent driven fields of the report are meaningful on the
// server. CSS support and scrollbar width reflect whatever htmlhost options
// the caller passes; by default they are false and 0.
//
// # Usage
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    if report, ok := probe.FromContext(r.Context()); ok && report.IsMobile != nil {
//	        // serve the mobile layout
//	    }
//	})
//	handler := requesthost.Middleware(log)(mux)
package requesthost

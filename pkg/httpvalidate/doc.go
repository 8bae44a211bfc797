// Package httpvalidate validates incoming HTTP requests with proptypes
// checkers.
//
// Body decodes a JSON object from the request body, URLParams reads chi route
// parameters. Both run proptypes.Check against the declared fields and either
// reject the request through an ErrorHandler or pass the props, with checker
// defaults applied, to the next handler via the request context.
//
// # Usage
//
//	fields := map[string]proptypes.TypeChecker{
//	    "email": proptypes.New(checkers.Email()).Required(),
//	    "plan":  proptypes.New(checkers.OneOf("free", "pro")).Default("free"),
//	}
//
//	r := chi.NewRouter()
//	r.With(httpvalidate.Body(fields, httpvalidate.WithLogger(log))).
//	    Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	        props, _ := httpvalidate.PropsFromContext(r.Context())
//	        // props["plan"] is "free" when the client omitted it
//	    })
//
// # Error Handling
//
// WriteError renders failures with the JSON envelope
//
//	{"error": {"code": "validation_error", "message": "...", "details": {"email": ["..."]}}}
//
// using 422 for validation errors, 400 for malformed JSON, 413 for oversized
// bodies and 415 for a missing or wrong Content-Type.
//
// # Configuration
//
// Config carries env tags; LoadConfig reads it through pkg/config:
//
//	cfg, err := httpvalidate.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	mw := httpvalidate.Body(fields, httpvalidate.WithConfig(cfg))
package httpvalidate

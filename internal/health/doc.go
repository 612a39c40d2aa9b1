package health

// Package health serves the unauthenticated liveness endpoint consumed by
// uptime monitors. The root route answers with a plain confirmation string;
// /healthz returns a parseable JSON body.

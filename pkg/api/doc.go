// Package api exposes the construction pipeline over HTTP.
//
// # Overview
//
// The API is a thin JSON layer over [pipeline.Runner]. It adds transport
// concerns (routing, request limits, error payloads) and nothing else; all
// construction semantics live in the pipeline.
//
// # Endpoints
//
//	POST /v1/cluster   bounded merge, returns the component summary
//	POST /v1/connect   full-connectivity scan, returns the completing edge
//	GET  /healthz      liveness probe
//
// Both construction endpoints accept the same body:
//
//	{
//	  "points":  "0,0,0\n1,0,0\n...",   // inline point data, or
//	  "url":     "https://...",         // remote point file
//	  "k":       1000,                  // cluster only, optional
//	  "refresh": false                  // bypass the result cache
//	}
//
// # Errors
//
// Failures return a JSON payload with a stable machine-readable code:
//
//	{"error": {"code": "DISCONNECTED", "message": "graph never fully connects"}}
//
// Malformed input maps to 400, a graph that never connects to 422, and
// anything unexpected to 500.
package api

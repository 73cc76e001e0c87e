// Package framework contains the probing engine, independent of which microservices are
// being probed.
//
// The general model is:
//
// 1. A Service is an identifier plus an ordered list of Endpoints. Each Endpoint has a name,
// an Invocation that performs the remote call, and a Mode: plain endpoints are expected to
// succeed, assertion-mode endpoints are expected to be refused with a specific error.
//
// 2. Invokers report failures as *EndpointError, tagged as a transport, protocol or encoding
// failure. Classify turns the result of one invocation into an Outcome.
//
// 3. A Prober invokes every endpoint of each service exactly once, sequentially, and records
// the Outcomes into one ProbeResult per service. The Results of the run belong to the Prober
// until it is finished, and are then handed over for reporting.
//
// The domain-specific code that knows which services exist and how to call them is in the
// peachtests and client packages.
package framework

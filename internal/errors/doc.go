// Package errors provides the structured error type shared by every layer of
// brainmon-api.
//
// An *Error carries a Code, a user-facing Message, an optional wrapped Cause and
// free-form metadata. Codes survive wrapping, so a repository can return
//
//	errors.NotFoundf("monster %d not found", id)
//
// and the orchestrator can add context with
//
//	errors.Wrap(err, "failed to rename monster")
//
// without losing the NOT_FOUND classification that the gRPC handler later
// turns into codes.NotFound through ToGRPCError.
//
// # Layer guidelines
//
// Clients (pokeapi, opentdb) map transport failures to Unavailable, missing
// resources to NotFound and decode failures to Internal.
//
// Repositories return NotFound and InvalidArgument and wrap driver errors.
//
// Orchestrators validate inputs (InvalidArgument) and state (FailedPrecondition).
//
// Handlers call ToGRPCError on the way out; CLI clients call FromGRPCError on
// the way back in.
package errors

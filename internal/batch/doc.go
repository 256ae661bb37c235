// Package batch runs the interactive generation session.
//
// A session walks a fixed sequence of states:
//
//	CollectTemplate -> SelectFormat -> CollectCount -> Generate -> Report -> AskRepeat
//
// AskRepeat either returns to CollectTemplate or ends in Done. Validation
// and filesystem failures end the session immediately with a typed error
// (EmptyInputError, InvalidSelectionError, InvalidCountError,
// FilesystemError). Files written before a failure are kept.
package batch

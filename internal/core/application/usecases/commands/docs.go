// Package commands contains the user actions that change the wizard.
//
// Every command follows the same pattern: a value built through its
// constructor (guarded against zero values), and a handler that validates the
// command and applies it to the wizard through the ports.WizardSession port.
// Actions the current screen does not offer fail with wizard.ErrActionNotAllowed
// and leave the wizard unchanged.
//
// Finishing an order additionally hands the order snapshot to the
// SubmissionDispatcher, which delivers it in the background.
package commands

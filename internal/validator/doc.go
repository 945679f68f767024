// Package validator holds the field checks shared by every form.
//
// The checks are plain package-level functions over strings and numbers.
// There is no shared state, so they are safe to call from any goroutine.
//
// Most checks report a bare bool and treat missing input ("" or 0) as a
// failed check. A few can be handed input they cannot interpret at all and
// return an error in that case:
//
//   - WithoutSymbols returns ErrEmptyInput for "".
//   - IsBeforeDate, IsAfterDate, IsBeforeToday and IsAfterToday return
//     ErrInvalidDate when a non-empty argument is not a date.
//
// Validator collects per-field messages for a form. A handler runs its
// checks through CheckField and re-renders the form when Valid is false:
//
//	form.CheckField(!validator.IsEmpty(form.Email), "email", "Please enter an email address.")
//	form.CheckField(validator.IsEmailAddress(form.Email), "email", "Please enter a valid email address.")
//	if !form.Valid() {
//	    // show form.FieldErrors next to the inputs
//	}
package validator

// Package errors provides the coded error type used across echosheet.
//
// Every error that can reach a user carries a Code and a short Message. The
// Message is what the CLI prints as a notification; the Code decides how the
// caller reacts (retry the form, show a validation list, give up).
//
// Creating errors:
//
//	err := errors.NotFoundf("spell %q not found", name)
//	err := errors.OutOfRangef("cannot decrease %s: minimum base score is %d", ability, 8)
//
// Backend failures:
//
//	resp, err := httpClient.Do(req)
//	if err != nil {
//	    return errors.FromTransport(err, "autofill")
//	}
//	if resp.StatusCode >= 300 {
//	    return errors.FromResponse(resp.StatusCode, body.Error)
//	}
//	if !body.Success {
//	    return errors.FromServer(body.Error)
//	}
//
// Form validation collects every field problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", draft.Name, vb)
//	errors.ValidateRange("level", draft.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors

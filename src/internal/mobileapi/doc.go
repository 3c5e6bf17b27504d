// Package mobileapi provides a client for the mobiles inventory REST API.
//
// The client translates five operations into HTTP calls against
// <base>/api/mobiles:
//
//	GET    /all          ListAll
//	GET    /get/{id}     GetByID
//	POST   /add          Add
//	PUT    /update       Update
//	DELETE /delete/{id}  DeleteByID
//
// There is no retry and no timeout policy beyond the context and the
// injected HTTP client. Network failures and non-2xx statuses are returned as
// TRANSPORT_ERROR errors from the errors package.
//
// # Example Usage
//
//	client := mobileapi.NewClient("http://localhost:8080", nil)
//	mobiles, err := client.ListAll(ctx)
//	if err != nil {
//	    return err
//	}
//
// The client holds no package-level state; create one per configured base URL.
package mobileapi

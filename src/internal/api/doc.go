// Package api provides the HTTP servers of mobile-manager.
//
// Two routers live here:
//   - NewRouter: the server-rendered Manager View. Each browser gets a
//     session holding its own manager.Manager; forms POST to the server,
//     which runs the action and redirects back to the page.
//   - NewBackendRouter: an in-memory implementation of the /api/mobiles
//     REST contract, useful for local development and tests.
//
// # Backend Endpoints
//
//	GET    /api/mobiles/all          array of records
//	GET    /api/mobiles/get/{id}     one record
//	POST   /api/mobiles/add          created record
//	PUT    /api/mobiles/update       updated record
//	DELETE /api/mobiles/delete/{id}  "Deleted mobile <id>" (text/plain)
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "ERROR_CODE",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
package api

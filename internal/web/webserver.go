package web

// File map of package web:
/*

	### **Core Files:**
	1. **`webserver_core_routes.go`** - Server setup, middleware, route configuration and Start
	2. **`web_errors.go`** - JSON error replies and panic recovery
	3. **`embedded_static.go`** - Embedded front-end assets with ETags

	### **Page Handler Files:**
	4. **`web_homePage.go`** - Single page front-end on "/" and the API documentation pages

	### **API Files:**
	5. **`web_apiHandlers.go`** - Counter and theme endpoints
	6. **`web_diagnostics.go`** - Fixed-response diagnostic endpoints

*/

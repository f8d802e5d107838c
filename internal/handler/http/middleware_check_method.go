// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFoundForMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is routed but the method is not. Answering 404
// instead keeps unsupported methods from revealing which paths exist.
func notFoundForMethod(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/buildings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buildings"],
                "summary": "All campus buildings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Building"}}}
                }
            }
        },
        "/buildings/nearest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buildings"],
                "summary": "Closest building to a point",
                "parameters": [
                    {"type": "number", "description": "latitude", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "longitude", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Building"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/buildings/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["buildings"],
                "summary": "One building, for the detail modal",
                "parameters": [
                    {"type": "string", "description": "building name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Building"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/locations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Record the device position",
                "parameters": [
                    {"description": "device position", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LocationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.LocationPing"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/navigation/camera": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["navigation"],
                "summary": "Stream of camera moves",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/navigation/external": {
            "get": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Deep link into the platform maps application",
                "parameters": [
                    {"type": "string", "description": "ios, android or web", "name": "platform", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/navigation/playback": {
            "get": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Playback status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaybackResponse"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Fly the camera along the current route",
                "responses": {
                    "200": {"description": "no route to play", "schema": {"$ref": "#/definitions/handler.PlaybackResponse"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.PlaybackResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["navigation"],
                "summary": "Stop playback",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PlaybackResponse"}}}
            }
        },
        "/route": {
            "get": {
                "produces": ["application/json"],
                "tags": ["route"],
                "summary": "Current destination and route",
                "parameters": [
                    {"type": "string", "description": "'geojson' for a GeoJSON LineString feature", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RouteResponse"}}}
            },
            "delete": {
                "tags": ["route"],
                "summary": "Drop the destination and route, stopping playback",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Current search box state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SearchState"}}}
            }
        },
        "/search/autocomplete": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Suggest places for a partial query",
                "parameters": [
                    {"type": "string", "description": "search box text", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AutocompleteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/search/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Resolve a suggestion and fetch a route to it",
                "parameters": [
                    {"description": "selected suggestion", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SelectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Selection"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "animator.Status": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "state": {"type": "string", "enum": ["idle", "playing"]},
                "last_outcome": {"type": "string", "enum": ["none", "complete", "cancelled"]},
                "cursor": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handler.AutocompleteResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/models.PlaceSuggestion"}},
                "stale": {"type": "boolean"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.LocationRequest": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "accuracy": {"type": "number"}
            }
        },
        "handler.PlaybackResponse": {
            "type": "object",
            "properties": {
                "started": {"type": "boolean"},
                "cancelled": {"type": "boolean"},
                "status": {"$ref": "#/definitions/animator.Status"}
            }
        },
        "handler.RouteResponse": {
            "type": "object",
            "properties": {
                "destination": {"$ref": "#/definitions/models.Destination"},
                "route": {"$ref": "#/definitions/models.Route"}
            }
        },
        "handler.SelectRequest": {
            "type": "object",
            "required": ["place_id"],
            "properties": {"place_id": {"type": "string"}}
        },
        "models.Building": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "description": {"type": "string"},
                "icon_name": {"type": "string"}
            }
        },
        "models.Coordinate": {
            "type": "object",
            "properties": {
                "longitude": {"type": "number"},
                "latitude": {"type": "number"}
            }
        },
        "models.Destination": {
            "type": "object",
            "properties": {
                "coordinate": {"$ref": "#/definitions/models.Coordinate"},
                "label": {"type": "string"}
            }
        },
        "models.LocationPing": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "coordinate": {"$ref": "#/definitions/models.Coordinate"},
                "accuracy": {"type": "number"},
                "recorded_at": {"type": "string"}
            }
        },
        "models.PlaceSuggestion": {
            "type": "object",
            "properties": {
                "place_id": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "models.Route": {
            "type": "object",
            "properties": {
                "coordinates": {"type": "array", "items": {"$ref": "#/definitions/models.Coordinate"}}
            }
        },
        "service.SearchState": {
            "type": "object",
            "properties": {
                "phase": {"type": "string", "enum": ["idle", "suggesting", "resolving", "resolved", "lookup_failed", "route_failed"]},
                "query": {"type": "string"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/models.PlaceSuggestion"}}
            }
        },
        "service.Selection": {
            "type": "object",
            "properties": {
                "destination": {"$ref": "#/definitions/models.Destination"},
                "route": {"$ref": "#/definitions/models.Route"},
                "route_status": {"type": "string", "enum": ["found", "no_route", "origin_unknown"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Campus Map API",
	Description:      "Destination search, routing and camera playback for the campus map client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

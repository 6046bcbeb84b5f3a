package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Health Records API",
        "description": "Registers clients, defines health programs and enrolls clients into programs.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Programs", "description": "Health program catalogue"},
        {"name": "Clients", "description": "Client registration, search and profiles"},
        {"name": "Enrollments", "description": "Client ↔ program enrollment"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/programs": {
            "get": {
                "tags": ["Programs"],
                "summary": "List health programs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Program"}}}
                }
            },
            "post": {
                "tags": ["Programs"],
                "summary": "Create health program",
                "parameters": [
                    {"name": "X-API-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProgramRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid or duplicate name", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/clients": {
            "get": {
                "tags": ["Clients"],
                "summary": "Search clients by name",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string", "minLength": 2}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClientSearchResult"}}},
                    "400": {"description": "Search term too short", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Clients"],
                "summary": "Register client",
                "parameters": [
                    {"name": "X-API-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterClientRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/clients/{id}": {
            "get": {
                "tags": ["Clients"],
                "summary": "Get client profile with enrolled programs",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClientProfile"}},
                    "404": {"description": "Unknown client", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/clients/{id}/programs": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll client in program",
                "parameters": [
                    {"name": "X-API-Key", "in": "header", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollClientRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing program_id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Unknown client or program", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/clients/{id}/export": {
            "get": {
                "tags": ["Clients"],
                "summary": "Download client profile as CSV or PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "Unknown client", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Program": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "ClientSearchResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "dob": {"type": "string", "format": "date"}
            }
        },
        "ClientProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "dob": {"type": "string", "format": "date"},
                "contact_info": {"type": "string"},
                "programs": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ProgramEnrollment"}
                }
            }
        },
        "ProgramEnrollment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "enrollment_date": {"type": "string", "format": "date"},
                "notes": {"type": "string"}
            }
        },
        "CreateProgramRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["name"]
        },
        "RegisterClientRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "date_of_birth": {"type": "string", "format": "date"},
                "contact_info": {"type": "string"}
            },
            "required": ["first_name", "last_name", "date_of_birth"]
        },
        "EnrollClientRequest": {
            "type": "object",
            "properties": {
                "program_id": {"type": "integer"},
                "notes": {"type": "string"}
            },
            "required": ["program_id"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

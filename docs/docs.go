// Package docs holds the OpenAPI description served under /swagger.
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
        "/ranks": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "List academic ranks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "Add one of the academic ranks",
                "parameters": [
                    {
                        "description": "Academic rank",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AcademicRankDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "Replace one of the academic ranks",
                "parameters": [
                    {
                        "description": "Academic rank",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AcademicRankDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/ranks/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "Search academic ranks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/ranks/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "Get one of the academic ranks",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ranks"
                ],
                "summary": "Delete one of the academic ranks",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/courses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "List courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Add one of the courses",
                "parameters": [
                    {
                        "description": "Course",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CourseDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Replace one of the courses",
                "parameters": [
                    {
                        "description": "Course",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CourseDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/courses/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Search courses",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Get one of the courses",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Delete one of the courses",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/lecturers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "List lecturers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "Add one of the lecturers",
                "parameters": [
                    {
                        "description": "Lecturer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LecturerDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "Replace one of the lecturers",
                "parameters": [
                    {
                        "description": "Lecturer",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LecturerDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/lecturers/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "Search lecturers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/lecturers/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "Get one of the lecturers",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lecturers"
                ],
                "summary": "Delete one of the lecturers",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/semesters": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "List semesters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "Add one of the semesters",
                "parameters": [
                    {
                        "description": "Semester",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SemesterDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "Replace one of the semesters",
                "parameters": [
                    {
                        "description": "Semester",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SemesterDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/semesters/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "Search semesters",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/semesters/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "Get one of the semesters",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "semesters"
                ],
                "summary": "Delete one of the semesters",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/students": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "List students",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "Add one of the students",
                "parameters": [
                    {
                        "description": "Student",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.StudentDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "Replace one of the students",
                "parameters": [
                    {
                        "description": "Student",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.StudentDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/students/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "Search students",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/students/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "Get one of the students",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "students"
                ],
                "summary": "Delete one of the students",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Add one of the users",
                "parameters": [
                    {
                        "description": "User",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Replace one of the users",
                "parameters": [
                    {
                        "description": "User",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UserDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/users/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Search users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get one of the users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Delete one of the users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/schedules": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "List schedule entries",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Add one of the schedule entries",
                "parameters": [
                    {
                        "description": "schedule entries",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ScheduleEntryDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Replace one of the schedule entries",
                "parameters": [
                    {
                        "description": "schedule entries",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ScheduleEntryDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input or duplicate entry",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/schedules/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Search schedule entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search criterion",
                        "name": "param",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        },
        "/schedules/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Get one of the schedule entries",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedules"
                ],
                "summary": "Delete one of the schedule entries",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Record key",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Unparsable key",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "timeStamp": {
                    "type": "integer"
                },
                "responseBody": {}
            }
        },
        "dto.AcademicRankDTO": {
            "type": "object",
            "properties": {
                "rankId": {
                    "type": "integer"
                },
                "numericRank": {
                    "type": "integer"
                },
                "rankName": {
                    "type": "string",
                    "maxLength": 45
                }
            }
        },
        "dto.CourseDTO": {
            "type": "object",
            "properties": {
                "courseId": {
                    "type": "integer"
                },
                "courseTitle": {
                    "type": "string",
                    "maxLength": 45
                },
                "courseDescription": {
                    "type": "string",
                    "maxLength": 45
                }
            }
        },
        "dto.LecturerDTO": {
            "type": "object",
            "properties": {
                "lecturerId": {
                    "type": "integer"
                },
                "lecturerName": {
                    "type": "string",
                    "maxLength": 45
                },
                "dateOfBirth": {
                    "type": "string",
                    "example": "1975-12-10"
                },
                "numericAcademicRank": {
                    "type": "integer"
                }
            }
        },
        "dto.SemesterDTO": {
            "type": "object",
            "properties": {
                "entryId": {
                    "type": "integer"
                },
                "semesterId": {
                    "type": "string",
                    "maxLength": 7
                },
                "semesterName": {
                    "type": "string",
                    "maxLength": 30
                },
                "semesterYear": {
                    "type": "integer"
                },
                "semesterStartTime": {
                    "type": "string",
                    "example": "2031-09-01"
                },
                "semesterEndTime": {
                    "type": "string",
                    "example": "2031-12-20"
                }
            }
        },
        "dto.StudentDTO": {
            "type": "object",
            "properties": {
                "studentId": {
                    "type": "integer"
                },
                "studentName": {
                    "type": "string",
                    "maxLength": 45
                },
                "dateOfBirth": {
                    "type": "string",
                    "example": "2004-06-23"
                }
            }
        },
        "dto.UserDTO": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "login": {
                    "type": "string",
                    "maxLength": 45
                },
                "password": {
                    "type": "string",
                    "maxLength": 45
                },
                "isActive": {
                    "type": "boolean"
                },
                "studentId": {
                    "type": "integer"
                }
            }
        },
        "dto.ScheduleEntryDTO": {
            "type": "object",
            "properties": {
                "entryId": {
                    "type": "integer"
                },
                "studentId": {
                    "type": "integer"
                },
                "lecturerId": {
                    "type": "integer"
                },
                "courseId": {
                    "type": "integer"
                },
                "time": {
                    "type": "string",
                    "example": "2031-09-02 08:30:00"
                },
                "location": {
                    "type": "string",
                    "maxLength": 45
                },
                "semesterId": {
                    "type": "string",
                    "maxLength": 7
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "University Registrar API",
	Description:      "Record management for academic ranks, courses, lecturers, semesters, students, users and class schedules.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

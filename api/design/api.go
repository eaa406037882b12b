package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("tkprime", func() {
	Title("TK Prime API")
	Description("Backend API for TK Prime Services LLC - contact submission intake and triage")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// JWT Security
var JWTAuth = JWTSecurity("jwt", func() {
	Description("JWT authentication")
	Scope("admin", "Admin access")
	Scope("staff", "Staff access")
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("TK Prime API")
	})
	Attribute("database", String, "Database status", func() {
		Example("up")
	})
})

// Authentication service
var _ = Service("auth", func() {
	Description("Authentication service for triage operators")
	Error("unauthorized", func() {
		Description("Invalid or missing credentials")
	})

	Method("login", func() {
		Description("Authenticate operator and return JWT token")
		Payload(LoginPayload)
		Result(LoginResult)
		Error("unauthorized")
		HTTP(func() {
			POST("/api/v1/auth/login")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("logout", func() {
		Description("Logout operator")
		Security(JWTAuth)
		Payload(LogoutPayload)
		Result(LogoutResult)
		Error("unauthorized")
		HTTP(func() {
			POST("/api/v1/auth/logout")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("me", func() {
		Description("Get current operator information")
		Security(JWTAuth)
		Payload(MePayload)
		Result(UserResult)
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/auth/me")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var LoginPayload = Type("LoginPayload", func() {
	Attribute("username", String, "Username", func() {
		MinLength(1)
		Example("admin")
	})
	Attribute("password", String, "Password", func() {
		MinLength(1)
		Example("password")
	})
	Required("username", "password")
})

var LoginResult = ResultType("LoginResult", func() {
	Attribute("access_token", String, "JWT access token")
	Attribute("token_type", String, "Token type", func() {
		Default("bearer")
		Example("bearer")
	})
	Required("access_token", "token_type")
})

var LogoutPayload = Type("LogoutPayload", func() {
	Token("token", String, "JWT token")
})

var LogoutResult = ResultType("LogoutResult", func() {
	Attribute("message", String, "Logout message", func() {
		Example("Successfully logged out")
	})
})

var MePayload = Type("MePayload", func() {
	Token("token", String, "JWT token")
})

var UserResult = ResultType("UserResult", func() {
	Attribute("id", Int, "User ID")
	Attribute("username", String, "Username")
	Attribute("email", String, "Email address")
	Attribute("full_name", String, "Full name")
	Attribute("is_admin", Boolean, "Is user admin")
	Attribute("is_staff", Boolean, "Is user staff")
	Attribute("last_login", String, "Last login timestamp")
	Required("id", "username", "email", "is_admin", "is_staff")
})

// Submission service
var _ = Service("submission", func() {
	Description("Contact submission intake and triage service")
	Error("bad_request", func() {
		Description("Invalid submission payload")
	})
	Error("unauthorized", func() {
		Description("Unauthorized access")
	})
	Error("not_found", func() {
		Description("Submission not found")
	})

	Method("submit", func() {
		Description("Submit the contact form")
		Payload(SubmitPayload)
		Result(SubmitResult)
		Error("bad_request")
		HTTP(func() {
			POST("/api/v1/submissions")
			Response(StatusCreated)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("list", func() {
		Description("List contact submissions, newest first (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ListSubmissionsPayload)
		Result(ArrayOf(SubmissionResult))
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/submissions")
			Param("search")
			Param("status")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("update_status", func() {
		Description("Update the triage status of a submission (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(UpdateStatusPayload)
		Result(SubmissionResult)
		Error("bad_request")
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			PATCH("/api/v1/submissions/{id}/status")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("summary", func() {
		Description("Summary counts over all submissions (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(SummaryPayload)
		Result(SummaryResult)
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/submissions/summary")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var SubmitPayload = Type("SubmitPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		MaxLength(100)
		Example("Jane Doe")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("jane@example.com")
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(7)
		MaxLength(20)
		Example("555-1212")
	})
	Attribute("services", ArrayOf(String), "Selected service tags (power-washing, sealing, leaf-cleanup, junk-removal, debris-removal)", func() {
		MinLength(1)
		Example([]string{"power-washing", "sealing"})
	})
	Attribute("message", String, "Message (optional)", func() {
		MaxLength(5000)
	})
	Required("name", "email", "phone", "services")
})

var SubmitResult = ResultType("SubmitResult", func() {
	Attribute("id", String, "Submission ID")
	Attribute("message", String, "Success message")
	Required("id", "message")
})

var ListSubmissionsPayload = Type("ListSubmissionsPayload", func() {
	Token("token", String, "JWT token")
	Attribute("search", String, "Free-text search over name, email, phone and service")
	Attribute("status", String, "Status filter", func() {
		Enum("all", "new", "contacted", "quoted", "completed", "cancelled")
		Default("all")
	})
})

var SubmissionResult = ResultType("SubmissionResult", func() {
	Attribute("id", String, "Submission ID")
	Attribute("name", String, "Full name")
	Attribute("email", String, "Email address")
	Attribute("phone", String, "Phone number")
	Attribute("service", String, "Comma-joined selected services")
	Attribute("message", String, "Message content")
	Attribute("status", String, "Triage status (new, contacted, quoted, completed, cancelled)")
	Attribute("created_at", String, "Creation timestamp")
	Attribute("updated_at", String, "Update timestamp")
	Required("id", "name", "email", "phone", "service", "status", "created_at")
})

var UpdateStatusPayload = Type("UpdateStatusPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", String, "Submission ID")
	Attribute("status", String, "New triage status", func() {
		Enum("new", "contacted", "quoted", "completed", "cancelled")
		Example("contacted")
	})
	Required("id", "status")
})

var SummaryPayload = Type("SummaryPayload", func() {
	Token("token", String, "JWT token")
})

var SummaryResult = ResultType("SummaryResult", func() {
	Attribute("total", Int, "Total number of submissions")
	Attribute("new", Int, "Submissions with status new")
	Attribute("active", Int, "Submissions with status contacted or quoted")
	Attribute("completed", Int, "Submissions with status completed")
	Required("total", "new", "active", "completed")
})

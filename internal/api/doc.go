// Package api is a client for the read-only portfolio API.
//
// Each of the four endpoints takes exactly one of email= or mobile= and
// answers with JSON:
//
//	GET /basic-info   single BasicInfo object
//	GET /projects     array of Project
//	GET /experiences  array of Experience
//	GET /skills       array of Skill
//
// Any status other than 200 is reported as a *StatusError.
package api

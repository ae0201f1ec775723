/*
Package session keeps running machines in process memory so that network adapters
(HTTP, MCP) can step them across requests.

Each session owns one catalog machine. Access to a session is serialised with a
per-session lock, while different sessions can be stepped concurrently. Nothing is
written to disk: sessions end with the process.
*/
package session

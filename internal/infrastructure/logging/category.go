package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	Playback        Category = "Playback"
	RequestResponse Category = "RequestResponse"
	Remote          Category = "Remote"
)

const (
	// General
	Startup         SubCategory = "Startup"
	Shutdown        SubCategory = "Shutdown"
	ExternalService SubCategory = "ExternalService"

	// Playback
	PlayResult SubCategory = "PlayResult"
	PlayError  SubCategory = "PlayError"

	// Remote
	Press     SubCategory = "Press"
	Websocket SubCategory = "Websocket"
)

const (
	AppName      ExtraKey = "AppName"
	LoggerName   ExtraKey = "Logger"
	ClientIp     ExtraKey = "ClientIp"
	Method       ExtraKey = "Method"
	StatusCode   ExtraKey = "StatusCode"
	BodySize     ExtraKey = "BodySize"
	Path         ExtraKey = "Path"
	Latency      ExtraKey = "Latency"
	ResponseBody ExtraKey = "ResponseBody"
	ErrorMessage ExtraKey = "ErrorMessage"
	ActivationID ExtraKey = "ActivationID"
	ButtonID     ExtraKey = "ButtonID"
	Source       ExtraKey = "Source"
	Surface      ExtraKey = "Surface"
	Dump         ExtraKey = "Dump"
	ClientID     ExtraKey = "ClientID"
	Addr         ExtraKey = "Addr"
)

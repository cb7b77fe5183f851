package domain

var (
	MessageFailedGetTips         = "failed to retrieve tips"
	MessageFailedGetExpiryLabels = "failed to retrieve expiry labels"
)

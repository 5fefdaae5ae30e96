package constants

const (
	SERVICE_BANKGW_ERROR  = "[SERVICE_BANKGW_ERROR].error "
	SERVICE_STORAGE_ERROR = "[SERVICE_STORAGE_ERROR].error "
	SERVICE_EVENTS_ERROR  = "[SERVICE_EVENTS_ERROR].error "
	SERVICE_ALERT_ERROR   = "[SERVICE_ALERT_ERROR].error "
)

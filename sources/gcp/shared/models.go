package shared

import "github.com/overmindtech/harvester/discovery"

// Service names. These are the first half of every classification path
const (
	BigQuery        = "bigQuery"
	Functions       = "functions"
	Logging         = "logging"
	Monitoring      = "monitoring"
	ResourceManager = "resourceManager"
	Trace           = "trace"
	TextToSpeech    = "textToSpeech"
)

// IAMPolicyField is the supplementary configuration key for IAM policies
const IAMPolicyField = "iamPolicy"

// Kind is one kind of resource discovered by a service
type Kind struct {
	Service      string
	Subtype      string
	ResourceType string
}

// ClassificationPath returns the path envelopes of this kind are tagged with
func (k Kind) ClassificationPath() []string {
	return discovery.Classification(k.Service, k.Subtype)
}

func (k Kind) String() string {
	return k.ResourceType
}

var (
	BigQueryDataset = Kind{BigQuery, "dataset", "GCP::BigQuery::Dataset"}

	FunctionsFunction = Kind{Functions, "function", "GCP::Functions::Function"}

	LoggingMetric    = Kind{Logging, "metric", "GCP::Logging::Metric"}
	LoggingSink      = Kind{Logging, "sink", "GCP::Logging::Sink"}
	LoggingBucket    = Kind{Logging, "bucket", "GCP::Logging::Bucket"}
	LoggingExclusion = Kind{Logging, "exclusion", "GCP::Logging::Exclusion"}

	MonitoringGroup       = Kind{Monitoring, "group", "GCP::Monitoring::Group"}
	MonitoringAlertPolicy = Kind{Monitoring, "alertPolicy", "GCP::Monitoring::AlertPolicy"}
	MonitoringService     = Kind{Monitoring, "service", "GCP::Monitoring::Service"}

	ResourceManagerOrganization = Kind{ResourceManager, "organization", "GCP::ResourceManager::Organization"}
	ResourceManagerProject      = Kind{ResourceManager, "project", "GCP::ResourceManager::Project"}

	TraceTrace = Kind{Trace, "trace", "GCP::Trace::Trace"}

	TextToSpeechVoice = Kind{TextToSpeech, "voice", "GCP::TextToSpeech::Voice"}
)

// LoggingConfigClientType tags failures to open the logging config client,
// which is shared by the sink, bucket and exclusion kinds
const LoggingConfigClientType = "GCP::Logging::ConfigClient"

// Kinds is every kind the GCP source can discover, grouped by service
var Kinds = []Kind{
	BigQueryDataset,
	FunctionsFunction,
	LoggingMetric,
	LoggingSink,
	LoggingBucket,
	LoggingExclusion,
	MonitoringGroup,
	MonitoringAlertPolicy,
	MonitoringService,
	ResourceManagerOrganization,
	ResourceManagerProject,
	TraceTrace,
	TextToSpeechVoice,
}

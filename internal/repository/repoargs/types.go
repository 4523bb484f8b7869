package repoargs

type RepositoryName string

const (
	UserRepoName           RepositoryName = "user"
	AccountRepoName        RepositoryName = "account"
	TransactionRepoName    RepositoryName = "transaction"
	ServiceRequestRepoName RepositoryName = "service_request"
	StatsRepoName          RepositoryName = "stats"
)

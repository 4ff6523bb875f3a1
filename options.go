package suggest

type clientConfig struct {
	addrs     []string
	username  string
	password  string
	db        int
	indexName string
	keyPrefix string

	overfetchMultiplier int
	purityWindow        int
	purityPenalty       float64

	catalogPath string
}

// Option configures the Client.
type Option func(*clientConfig)

// WithRedis sets the Redis connection addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithCredentials sets the database username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDB selects a logical Redis database.
func WithDB(db int) Option {
	return func(c *clientConfig) { c.db = db }
}

// WithStorageLayout overrides the index name and key prefix.
func WithStorageLayout(indexName, keyPrefix string) Option {
	return func(c *clientConfig) {
		c.indexName = indexName
		c.keyPrefix = keyPrefix
	}
}

// WithTuning overrides pipeline tuning. Non-positive values keep defaults.
func WithTuning(overfetchMultiplier, purityWindow int, purityPenalty float64) Option {
	return func(c *clientConfig) {
		c.overfetchMultiplier = overfetchMultiplier
		c.purityWindow = purityWindow
		c.purityPenalty = purityPenalty
	}
}

// WithCatalogFile points the client at an XML feed to seed an empty catalog
// during New.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) { c.catalogPath = path }
}

package collector

func (c *Collector) collectLocale() {
	c.info.Locale = c.getEnvWithDefault("LANG", "en_US.UTF-8")
}

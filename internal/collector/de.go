package collector

var desktopEnvVars = []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "XDG_SESSION_DESKTOP"}

// Checked in order when none of the desktop variables is set, e.g. over ssh.
var desktopProcesses = []processMatch{
	{"GNOME", []string{"gnome-shell", "gnome-session"}},
	{"KDE", []string{"plasmashell", "ksmserver"}},
	{"XFCE", []string{"xfce4-session"}},
	{"Cinnamon", []string{"cinnamon", "cinnamon-sessio"}},
	{"MATE", []string{"mate-session"}},
	{"LXQt", []string{"lxqt-session"}},
	{"LXDE", []string{"lxsession"}},
	{"Deepin", []string{"dde-desktop", "dde-session"}},
	{"Budgie", []string{"budgie-wm", "budgie-desktop"}},
	{"Pantheon", []string{"gala"}},
}

// A variable that is set but empty counts as unset.
func (c *Collector) collectDE() {
	for _, key := range desktopEnvVars {
		if de := c.getenv(key); de != "" {
			c.info.DE = de
			return
		}
	}

	de, err := c.detectProcess(desktopProcesses)
	c.info.DE = orFallback("de", de, err, "Unknown")
}

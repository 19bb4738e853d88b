package checks

import "os"

// DefaultCertPaths are the fixed TLS certificate locations expected for
// a production deployment.
var DefaultCertPaths = []string{
	"/opt/ssl/privkey.pem",
	"/opt/ssl/fullchain.pem",
}

// TLSCertificates checks that every expected certificate file exists.
// Missing certificates are reported at warning level but still fail the
// check, since production setup cannot proceed without them.
func TLSCertificates(paths []string, p *Printer) bool {
	p.Info("Checking TLS Certificates")

	allExist := true
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			allExist = false
			break
		}
	}

	if allExist {
		p.Success("TLS certificates found")
		return true
	}

	p.Warning("TLS certificates not found")
	p.Detail("For production, install TLS certificates:")
	p.Detail("1. Use Let's Encrypt: sudo certbot certonly --standalone -d yourdomain.com")
	p.Detail("2. Or create self-signed (testing only):")
	p.Detail("   sudo mkdir -p /opt/ssl")
	p.Detail("   sudo openssl req -x509 -newkey rsa:4096 -keyout /opt/ssl/privkey.pem -out /opt/ssl/fullchain.pem -days 365 -nodes")
	return false
}

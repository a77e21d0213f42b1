// Package reference holds the static lookup tables used to synthesize usage records.
// The tables are immutable after package initialization and safe for concurrent reads.
package reference

// FirstNames is the pool of given names.
var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
	"Lukas", "Hannah", "Jonas", "Lea", "Felix", "Mia", "Noah", "Lena",
	"Elias", "Sofia", "Finn", "Clara", "Mateo", "Lucia", "Hugo", "Ines",
	"Kenji", "Yuki", "Ravi", "Priya", "Omar", "Leila", "Tariq", "Amara",
}

// LastNames is the pool of family names.
var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Mueller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
	"Hoffmann", "Koch", "Richter", "Klein", "Wolf", "Schroeder", "Neumann", "Zimmermann",
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Dubois", "Moreau",
	"Tanaka", "Suzuki", "Sato", "Patel", "Sharma", "Khan", "Haddad", "Okafor",
}

// HostRoles are the leading fragment of generated hostnames.
var HostRoles = []string{
	"web", "app", "db", "cache", "build", "ci", "dev", "desk",
	"lab", "kiosk", "edge", "mail", "vpn", "proxy", "batch", "render",
}

// HostSites are the location fragment of generated hostnames.
var HostSites = []string{
	"ber", "fra", "muc", "ham", "ams", "lon", "par", "vie",
	"zrh", "waw", "prg", "sto", "osl", "hel", "mad", "lis",
	"nyc", "sfo", "sea", "chi", "tor", "sgp", "tyo", "syd",
}

// OperatingSystems are device operating system descriptors.
var OperatingSystems = []string{
	"Arch Linux; 5.6.14-arch1-1",
	"Ubuntu 16.04.6; 4.4.0-13.29~14.04.1; ",
	"Ubuntu 18.04.4; 4.15.0-102.103",
	"Ubuntu 19.10; 5.3.0-56.50",
	"Ubuntu 20.04; 5.4.0-34.38",
	"Fedora release 31 (Thirty One); 5.3.7-301 ",
	"Red Hat Enterprise Linux release 8.0 Beta (Ootpa); 4.18.0-80",
	"CentOS Linux release 7.6.1810 (Core); 3.10.0-957",
	"Microsoft Windows XP Professional; 5.1.2600 Service Pack 2 Build 2600",
	"Microsoft Windows 7 Ultimate; 6.1.7600 N/A Build 7600",
	"Microsoft Windows 7 Enterprise;  6.1.7601 Service Pack 1 Build 7601",
	"Microsoft Windows Server 2008 R2 Enterprise; 6.1.7600 N/A Build 7600",
	"Microsoft Windows 10 Pro; 10.0.18363 N/A Build 18363",
}

// CPUs are processor model strings as reported by the device.
var CPUs = []string{
	"Intel(R) Core(TM) i7-4770 CPU @ 3.40GHz",
	"Intel(R) Core(TM) i5-5200U CPU @ 2.20GHz",
	"Intel(R) Celeron(R) CPU N2807 @ 1.58GHz",
	"Intel(R) Core(TM) i7-4790T CPU @ 2.70GHz",
	"Intel(R) Core(TM) i3-8300 CPU @ 3.70GHz",
	"Intel(R) Xeon(R) CPU E5-2640 0 @ 2.50GHz",
	"Intel(R) Core(TM) i7-4790S CPU @ 3.20GHz",
	"Pentium(R) Dual-Core CPU E6000 @ 3.46GHz",
	"AMD Ryzen Threadripper 3970X 32-Core Processor",
	"AMD Ryzen 5 3600X 6-Core Processor",
	"AMD Ryzen 5 PRO 2500U w/ Radeon Vega Mobile Gfx",
	"AMD Ryzen 3 1300X Quad-Core Processor",
	"AMD Ryzen 7 PRO 3700U w/ Radeon Vega Mobile Gfx",
	"Intel(R) Xeon(R) CPU E3-1535M v5 @ 2.90GHz",
	"Intel(R) Core(TM) i7-5950HQ CPU @ 2.90GHz",
	"Intel(R) Xeon(R) CPU E3-1230 v6 @ 3.50GHz",
	"Intel(R) Xeon(R) CPU E5-4650 0 @ 2.70GHz",
	"Intel(R) Core(TM) i5-1035G1 CPU @ 1.00GHz",
	"AMD Ryzen 3 4300U with Radeon Graphics",
	"Intel(R) Core(TM) i5-8257U CPU @ 1.40GHz",
	"Intel(R) Xeon(R) CPU E5-1660 0 @ 3.30GHz",
	"Intel(R) Xeon(R) CPU E3-1275 v6 @ 3.80GHz",
	"AMD Ryzen 5 PRO 2400G with Radeon Vega Graphics",
	"AMD Athlon(tm) II X4 640 Processor",
}

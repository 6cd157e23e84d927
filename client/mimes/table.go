package mimes

// seed lists MIME type to extension pairs. When a MIME type maps to several
// extensions the most common one comes first.
var seed = [][2]string{
	{"application/andrew-inset", "ez"},
	{"application/dsptype", "tsp"},
	{"application/futuresplash", "spl"},
	{"application/hta", "hta"},
	{"application/mac-binhex40", "hqx"},
	{"application/mac-compactpro", "cpt"},
	{"application/mathematica", "nb"},
	{"application/msaccess", "mdb"},
	{"application/oda", "oda"},
	{"application/ogg", "ogg"},
	{"application/pdf", "pdf"},
	{"application/pgp-keys", "key"},
	{"application/pgp-signature", "pgp"},
	{"application/pics-rules", "prf"},
	{"application/rar", "rar"},
	{"application/rdf+xml", "rdf"},
	{"application/rss+xml", "rss"},
	{"application/zip", "zip"},
	{"application/vnd.android.package-archive", "apk"},
	{"application/vnd.cinderella", "cdy"},
	{"application/vnd.ms-pki.stl", "stl"},
	{"application/vnd.oasis.opendocument.database", "odb"},
	{"application/vnd.oasis.opendocument.formula", "odf"},
	{"application/vnd.oasis.opendocument.graphics", "odg"},
	{"application/vnd.oasis.opendocument.graphics-template", "otg"},
	{"application/vnd.oasis.opendocument.image", "odi"},
	{"application/vnd.oasis.opendocument.spreadsheet", "ods"},
	{"application/vnd.oasis.opendocument.spreadsheet-template", "ots"},
	{"application/vnd.oasis.opendocument.text", "odt"},
	{"application/vnd.oasis.opendocument.text-master", "odm"},
	{"application/vnd.oasis.opendocument.text-template", "ott"},
	{"application/vnd.oasis.opendocument.text-web", "oth"},
	{"application/vnd.google-earth.kml+xml", "kml"},
	{"application/vnd.google-earth.kmz", "kmz"},
	{"application/msword", "doc"},
	{"application/msword", "dot"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.template", "dotx"},
	{"application/vnd.ms-excel", "xls"},
	{"application/vnd.ms-excel", "xlt"},
	{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"},
	{"application/vnd.openxmlformats-officedocument.spreadsheetml.template", "xltx"},
	{"application/vnd.ms-powerpoint", "ppt"},
	{"application/vnd.ms-powerpoint", "pot"},
	{"application/vnd.ms-powerpoint", "pps"},
	{"application/vnd.openxmlformats-officedocument.presentationml.presentation", "pptx"},
	{"application/vnd.openxmlformats-officedocument.presentationml.template", "potx"},
	{"application/vnd.openxmlformats-officedocument.presentationml.slideshow", "ppsx"},
	{"application/vnd.rim.cod", "cod"},
	{"application/vnd.smaf", "mmf"},
	{"application/vnd.stardivision.calc", "sdc"},
	{"application/vnd.stardivision.draw", "sda"},
	{"application/vnd.stardivision.impress", "sdd"},
	{"application/vnd.stardivision.impress", "sdp"},
	{"application/vnd.stardivision.math", "smf"},
	{"application/vnd.stardivision.writer", "sdw"},
	{"application/vnd.stardivision.writer", "vor"},
	{"application/vnd.stardivision.writer-global", "sgl"},
	{"application/vnd.sun.xml.calc", "sxc"},
	{"application/vnd.sun.xml.calc.template", "stc"},
	{"application/vnd.sun.xml.draw", "sxd"},
	{"application/vnd.sun.xml.draw.template", "std"},
	{"application/vnd.sun.xml.impress", "sxi"},
	{"application/vnd.sun.xml.impress.template", "sti"},
	{"application/vnd.sun.xml.math", "sxm"},
	{"application/vnd.sun.xml.writer", "sxw"},
	{"application/vnd.sun.xml.writer.global", "sxg"},
	{"application/vnd.sun.xml.writer.template", "stw"},
	{"application/vnd.visio", "vsd"},
	{"application/x-abiword", "abw"},
	{"application/x-apple-diskimage", "dmg"},
	{"application/x-bcpio", "bcpio"},
	{"application/x-bittorrent", "torrent"},
	{"application/x-cdf", "cdf"},
	{"application/x-cdlink", "vcd"},
	{"application/x-chess-pgn", "pgn"},
	{"application/x-cpio", "cpio"},
	{"application/x-debian-package", "deb"},
	{"application/x-debian-package", "udeb"},
	{"application/x-director", "dcr"},
	{"application/x-director", "dir"},
	{"application/x-director", "dxr"},
	{"application/x-dms", "dms"},
	{"application/x-doom", "wad"},
	{"application/x-dvi", "dvi"},
	{"application/x-flac", "flac"},
	{"application/x-font", "pfa"},
	{"application/x-font", "pfb"},
	{"application/x-font", "gsf"},
	{"application/x-font", "pcf"},
	{"application/x-font", "pcf.Z"},
	{"application/x-freemind", "mm"},
	{"application/x-gnumeric", "gnumeric"},
	{"application/x-go-sgf", "sgf"},
	{"application/x-graphing-calculator", "gcf"},
	{"application/x-gtar", "gtar"},
	{"application/x-gtar", "tgz"},
	{"application/x-gtar", "taz"},
	{"application/x-hdf", "hdf"},
	{"application/x-ica", "ica"},
	{"application/x-internet-signup", "ins"},
	{"application/x-internet-signup", "isp"},
	{"application/x-iphone", "iii"},
	{"application/x-iso9660-image", "iso"},
	{"application/x-jmol", "jmz"},
	{"application/x-kchart", "chrt"},
	{"application/x-killustrator", "kil"},
	{"application/x-koan", "skp"},
	{"application/x-koan", "skd"},
	{"application/x-koan", "skt"},
	{"application/x-koan", "skm"},
	{"application/x-kpresenter", "kpr"},
	{"application/x-kpresenter", "kpt"},
	{"application/x-kspread", "ksp"},
	{"application/x-kword", "kwd"},
	{"application/x-kword", "kwt"},
	{"application/x-latex", "latex"},
	{"application/x-lha", "lha"},
	{"application/x-lzh", "lzh"},
	{"application/x-lzx", "lzx"},
	{"application/x-maker", "frm"},
	{"application/x-maker", "maker"},
	{"application/x-maker", "frame"},
	{"application/x-maker", "fb"},
	{"application/x-maker", "book"},
	{"application/x-maker", "fbdoc"},
	{"application/x-mif", "mif"},
	{"application/x-ms-wmd", "wmd"},
	{"application/x-ms-wmz", "wmz"},
	{"application/x-msi", "msi"},
	{"application/x-ns-proxy-autoconfig", "pac"},
	{"application/x-nwc", "nwc"},
	{"application/x-object", "o"},
	{"application/x-oz-application", "oza"},
	{"application/x-pkcs12", "p12"},
	{"application/x-pkcs7-certreqresp", "p7r"},
	{"application/x-pkcs7-crl", "crl"},
	{"application/x-quicktimeplayer", "qtl"},
	{"application/x-shar", "shar"},
	{"application/x-shockwave-flash", "swf"},
	{"application/x-stuffit", "sit"},
	{"application/x-sv4cpio", "sv4cpio"},
	{"application/x-sv4crc", "sv4crc"},
	{"application/x-tar", "tar"},
	{"application/x-texinfo", "texinfo"},
	{"application/x-texinfo", "texi"},
	{"application/x-troff", "t"},
	{"application/x-troff", "roff"},
	{"application/x-troff-man", "man"},
	{"application/x-ustar", "ustar"},
	{"application/x-wais-source", "src"},
	{"application/x-wingz", "wz"},
	{"application/x-webarchive", "webarchive"},
	{"application/x-webarchive-xml", "webarchivexml"},
	{"application/x-x509-ca-cert", "crt"},
	{"application/x-xcf", "xcf"},
	{"application/x-xfig", "fig"},
	{"application/xhtml+xml", "xhtml"},
	{"audio/3gpp", "3gpp"},
	{"audio/amr", "amr"},
	{"audio/basic", "snd"},
	{"audio/midi", "mid"},
	{"audio/midi", "midi"},
	{"audio/midi", "kar"},
	{"audio/midi", "xmf"},
	{"audio/mobile-xmf", "mxmf"},
	{"audio/mpeg", "mpga"},
	{"audio/mpeg", "mpega"},
	{"audio/mpeg", "mp2"},
	{"audio/mpeg", "mp3"},
	{"audio/mpeg", "m4a"},
	{"audio/mpegurl", "m3u"},
	{"audio/prs.sid", "sid"},
	{"audio/x-aiff", "aif"},
	{"audio/x-aiff", "aiff"},
	{"audio/x-aiff", "aifc"},
	{"audio/x-gsm", "gsm"},
	{"audio/x-ms-wma", "wma"},
	{"audio/x-ms-wax", "wax"},
	{"audio/x-pn-realaudio", "ra"},
	{"audio/x-pn-realaudio", "rm"},
	{"audio/x-pn-realaudio", "ram"},
	{"audio/x-scpls", "pls"},
	{"audio/x-sd2", "sd2"},
	{"audio/x-wav", "wav"},
	{"image/bmp", "bmp"},
	{"audio/x-qcp", "qcp"},
	{"image/gif", "gif"},
	{"image/ico", "cur"},
	{"image/ico", "ico"},
	{"image/ief", "ief"},
	{"image/jpeg", "jpeg"},
	{"image/jpeg", "jpg"},
	{"image/jpeg", "jpe"},
	{"image/pcx", "pcx"},
	{"image/png", "png"},
	{"image/svg+xml", "svg"},
	{"image/svg+xml", "svgz"},
	{"image/tiff", "tiff"},
	{"image/tiff", "tif"},
	{"image/vnd.djvu", "djvu"},
	{"image/vnd.djvu", "djv"},
	{"image/vnd.wap.wbmp", "wbmp"},
	{"image/x-cmu-raster", "ras"},
	{"image/x-coreldraw", "cdr"},
	{"image/x-coreldrawpattern", "pat"},
	{"image/x-coreldrawtemplate", "cdt"},
	{"image/x-jg", "art"},
	{"image/x-jng", "jng"},
	{"image/x-photoshop", "psd"},
	{"image/x-portable-anymap", "pnm"},
	{"image/x-portable-bitmap", "pbm"},
	{"image/x-portable-graymap", "pgm"},
	{"image/x-portable-pixmap", "ppm"},
	{"image/x-rgb", "rgb"},
	{"image/x-xbitmap", "xbm"},
	{"image/x-xpixmap", "xpm"},
	{"image/x-xwindowdump", "xwd"},
	{"model/iges", "igs"},
	{"model/iges", "iges"},
	{"model/mesh", "msh"},
	{"model/mesh", "mesh"},
	{"model/mesh", "silo"},
	{"text/calendar", "ics"},
	{"text/calendar", "icz"},
	{"text/comma-separated-values", "csv"},
	{"text/css", "css"},
	{"text/html", "htm"},
	{"text/html", "html"},
	{"text/h323", "323"},
	{"text/iuls", "uls"},
	{"text/mathml", "mml"},
	{"text/plain", "txt"},
	{"text/plain", "log"},
	{"text/plain", "asc"},
	{"text/plain", "text"},
	{"text/plain", "diff"},
	{"text/plain", "po"},
	{"text/richtext", "rtx"},
	{"text/rtf", "rtf"},
	{"text/texmacs", "ts"},
	{"text/text", "phps"},
	{"text/tab-separated-values", "tsv"},
	{"text/xml", "xml"},
	{"text/x-bibtex", "bib"},
	{"text/x-boo", "boo"},
	{"text/x-c++hdr", "h++"},
	{"text/x-c++hdr", "hpp"},
	{"text/x-c++hdr", "hxx"},
	{"text/x-c++hdr", "hh"},
	{"text/x-c++src", "c++"},
	{"text/x-c++src", "cpp"},
	{"text/x-c++src", "cxx"},
	{"text/x-chdr", "h"},
	{"text/x-component", "htc"},
	{"text/x-csh", "csh"},
	{"text/x-csrc", "c"},
	{"text/x-dsrc", "d"},
	{"text/x-haskell", "hs"},
	{"text/x-java", "java"},
	{"text/x-literate-haskell", "lhs"},
	{"text/x-moc", "moc"},
	{"text/x-pascal", "p"},
	{"text/x-pascal", "pas"},
	{"text/x-pcs-gcd", "gcd"},
	{"text/x-setext", "etx"},
	{"text/x-tcl", "tcl"},
	{"text/x-tex", "tex"},
	{"text/x-tex", "ltx"},
	{"text/x-tex", "sty"},
	{"text/x-tex", "cls"},
	{"text/x-vcalendar", "vcs"},
	{"text/x-vcard", "vcf"},
	{"video/3gpp", "3gp"},
	{"video/3gpp", "3g2"},
	{"video/dl", "dl"},
	{"video/dv", "dif"},
	{"video/dv", "dv"},
	{"video/fli", "fli"},
	{"video/m4v", "m4v"},
	{"video/mpeg", "mpeg"},
	{"video/mpeg", "mpg"},
	{"video/mpeg", "mpe"},
	{"video/mp4", "mp4"},
	{"video/mpeg", "VOB"},
	{"video/quicktime", "qt"},
	{"video/quicktime", "mov"},
	{"video/vnd.mpegurl", "mxu"},
	{"video/webm", "webm"},
	{"video/x-la-asf", "lsf"},
	{"video/x-la-asf", "lsx"},
	{"video/x-mng", "mng"},
	{"video/x-ms-asf", "asf"},
	{"video/x-ms-asf", "asx"},
	{"video/x-ms-wm", "wm"},
	{"video/x-ms-wmv", "wmv"},
	{"video/x-ms-wmx", "wmx"},
	{"video/x-ms-wvx", "wvx"},
	{"video/x-msvideo", "avi"},
	{"video/x-sgi-movie", "movie"},
	{"x-conference/x-cooltalk", "ice"},
	{"x-epoc/x-sisx-app", "sisx"},
	{"application/x-dbx", "dbx"},
	{"application/vnd.mobius.daf", "daf"},
	{"video/h264", "h264"},
	{"application/vnd.dart", "dart"},
	{"audio/x-musicnet-stream", "mns"},
	{"application/vnd.dna", "dna"},
	{"text/vnd.curl.scurl", "scurl"},
	{"application/xop+xml", "xop"},
	{"video/h261", "h261"},
	{"application/x-x_t", "x_t"},
	{"application/x-tg4", "tg4"},
	{"audio/vnd.dts.hd", "dtshd"},
	{"application/vnd.cloanto.rp9", "rp9"},
	{"image/x-freehand", "fhc"},
	{"application/vnd.data-vision.rdz", "rdz"},
	{"application/vnd.adobe.formscentral.fcdt", "fcdt"},
	{"application/vnd.hp-hps", "hps"},
	{"application/vnd.oasis.opendocument.formula-template", "odft"},
	{"application/vnd.3gpp.pic-bw-large", "plb"},
	{"application/widget", "wgt"},
	{"application/rpki-manifest", "mft"},
	{"application/ipfix", "ipfix"},
	{"application/vnd.ms-powerpoint", "pwz"},
	{"application/x-wq1", "wq1"},
	{"application/x-xpinstall", "xpi"},
	{"application/jsonml+json", "jsonml"},
	{"text/n3", "n3"},
	{"text/x-asm", "s"},
	{"application/vnd.tao.intent-module-archive", "tao"},
	{"application/shf+xml", "shf"},
	{"video/vnd.fvt", "fvt"},
	{"application/vnd.mcd", "mcd"},
	{"application/vnd.nokia.n-gage.data", "ngdat"},
	{"application/vnd.geogebra.tool", "ggt"},
	{"application/vnd.shana.informed.formdata", "ifm"},
	{"application/x-drw", "drw"},
	{"application/vnd.intu.qfx", "qfx"},
	{"application/font-woff", "woff"},
	{"application/vnd.astraea-software.iota", "iota"},
	{"application/vnd.lotus-organizer", "org"},
	{"application/vnd.rn-realsystem-rjt", "rjt"},
	{"application/vnd.hhe.lesson-player", "les"},
	{"application/x-301", "301"},
	{"application/vnd.unity", "unityweb"},
	{"application/voicexml+xml", "vxml"},
	{"application/vnd.irepository.package+xml", "irp"},
	{"text/vnd.fmi.flexstor", "flx"},
	{"model/vnd.dwf", "dwf"},
	{"application/cdmi-domain", "cdmid"},
	{"application/atom+xml", "atom"},
	{"application/x-mac", "mac"},
	{"application/x-001", "001"},
	{"application/x-lbm", "lbm"},
	{"application/x-sam", "sam"},
	{"application/vnd.crick.clicker.wordbank", "clkw"},
	{"application/vnd.yamaha.smaf-audio", "saf"},
	{"application/vnd.ms-pki.pko", "pko"},
	{"application/vnd.fdsn.mseed", "mseed"},
	{"application/wsdl+xml", "wsdl"},
	{"application/vnd.ms-cab-compressed", "cab"},
	{"application/vnd.osgi.subsystem", "esa"},
	{"text/vnd.dvb.subtitle", "sub"},
	{"application/vnd.sema", "sema"},
	{"application/vnd.dolby.mlp", "mlp"},
	{"application/vnd.seemail", "see"},
	{"application/vnd.insors.igm", "igm"},
	{"application/vnd.novadigm.edm", "edm"},
	{"application/x-mspublisher", "pub"},
	{"application/vnd.iphone", "ipa"},
	{"application/vnd.hydrostatix.sof-data", "sfd-hdstx"},
	{",	application/x-javascript", "mocha"},
	{"application/x-a11", "a11"},
	{"application/x-dbf", "dbf"},
	{"application/scvp-cv-response", "scs"},
	{"application/x-font-linux-psf", "psf"},
	{"application/vnd.publishare-delta-tree", "qps"},
	{"application/yin+xml", "yin"},
	{"application/vnd.adobe.pdx", "pdx"},
	{"video/ogg", "ogv"},
	{"application/vnd.semf", "semf"},
	{"application/x-bzip", "bz"},
	{"image/vnd.dece.graphic", "uvvi"},
	{"application/x-ms-shortcut", "lnk"},
	{"video/x-flv", "flv"},
	{"application/mads+xml", "mads"},
	{"application/vnd.zzazz.deck+xml", "zaz"},
	{"audio/mid", "rmi"},
	{"application/x-wb1", "wb1"},
	{"application/reginfo+xml", "rif"},
	{"application/vnd.lotus-1-2-3", "123"},
	{"application/vnd.fujixerox.docuworks.binder", "xbd"},
	{"application/x-blorb", "blorb"},
	{"application/vnd.novadigm.edx", "edx"},
	{"application/vnd.geogebra.file", "ggb"},
	{"audio/vnd.ms-playready.media.pya", "pya"},
	{"application/vnd.syncml.dm+xml", "xdm"},
	{"application/x-x509-ca-cert", "der"},
	{"application/vnd.wap.wbxml", "wbxml"},
	{"application/cdmi-queue", "cdmiq"},
	{"application/x-rle", "rle"},
	{"application/vnd.ezpix-album", "ez2"},
	{"application/vnd.picsel", "efif"},
	{"application/java-serialized-object", "ser"},
	{"audio/x-aac", "aac"},
	{"application/vnd.musician", "mus"},
	{"application/x-msmediaview", "mvb"},
	{"application/x-g4", "ig4"},
	{"image/x-pict", "pic"},
	{"video/mpeg", "mpv2"},
	{"application/x-t3vm-image", "t3"},
	{"application/vnd.acucorp", "atc"},
	{"application/x-mie", "mie"},
	{"application/sparql-query", "rq"},
	{"application/x-dtbook+xml", "dtb"},
	{"application/x-dgn", "dgn"},
	{"drawing/x-top", "top"},
	{"application/x-prn", "prn"},
	{"application/vnd.is-xpr", "xpr"},
	{"application/x-hpgl", "hpg"},
	{"application/x-wb2", "wb2"},
	{"application/vnd.ms-project", "mpx"},
	{"application/vnd.pmi.widget", "wg"},
	{"application/vnd.crick.clicker.keyboard", "clkk"},
	{"application/java-vm", "class"},
	{"application/vnd.micrografx.flo", "flo"},
	{"application/x-msbinder", "obd"},
	{"application/vnd.pg.osasli", "ei6"},
	{"application/vnd.ms-powerpoint.addin.macroenabled.12", "ppam"},
	{"application/x-ms-application", "application"},
	{"application/fractals", "fif"},
	{"application/vnd.rn-recording", "rec"},
	{",	audio/x-la-lms", "lmsff"},
	{"application/vnd.mobius.mbk", "mbk"},
	{"application/x-dxb", "dxb"},
	{"application/vnd.rn-realsystem-rmj", "rmj"},
	{"application/x-cbr", "cbz"},
	{"application/gpx+xml", "gpx"},
	{"application/vnd.bmi", "bmi"},
	{"application/x-tads", "gam"},
	{"image/sgi", "sgi"},
	{"application/vnd.commonspace", "csp"},
	{"application/vnd.dece.data", "uvvf"},
	{"application/relax-ng-compact-syntax", "rnc"},
	{"application/java-archive", "jar"},
	{"application/x-cfs-compressed", "cfs"},
	{"application/vnd.businessobjects", "rep"},
	{"application/vnd.mseq", "mseq"},
	{"application/vnd.ms-pki.seccat", "cat"},
	{"application/xenc+xml", "xenc"},
	{"application/vnd.kidspiration", "kia"},
	{"application/vnd.ms-excel.template.macroenabled.12", "xltm"},
	{"image/ktx", "ktx"},
	{"application/javascript", "js"},
	{"application/vnd.kenameaapp", "htke"},
	{"audio/vnd.lucent.voice", "lvp"},
	{"application/x-7z-compressed", "7z"},
	{"text/cache-manifest", "appcache"},
	{"application/vnd.accpac.simply.imp", "imp"},
	{"audio/vnd.dra", "dra"},
	{"application/pkcs8", "p8"},
	{"application/vnd.kinar", "knp"},
	{"application/x-ms-xbap", "xbap"},
	{"application/vnd.fujitsu.oasys", "oas"},
	{"video/h263", "h263"},
	{"application/x-dbm", "dbm"},
	{"application/vnd.anser-web-certificate-issue-initiation", "cii"},
	{"application/postscript", "ps"},
	{"audio/x-pn-realaudio-plugin", "rpm"},
	{"application/vnd.fuzzysheet", "fzs"},
	{"video/vnd.dece.video", "uvvv"},
	{"application/scvp-cv-request", "scq"},
	{"application/vnd.geoplan", "g2w"},
	{"application/mods+xml", "mods"},
	{"application/set-registration-initiation", "setreg"},
	{"application/pkixcmp", "pki"},
	{"application/vnd.flographit", "gph"},
	{"application/vnd.groove-identity-message", "gim"},
	{"application/x-mobipocket-ebook", "prc"},
	{"application/x-hrf", "hrf"},
	{"application/x-c4t", "c4t"},
	{"application/timestamped-data", "tsd"},
	{"text/x-fortran", "for"},
	{"application/vnd.mozilla.xul+xml", "xul"},
	{"application/vnd.cluetrust.cartomobile-config-pkg", "c11amz"},
	{"application/vnd.proteus.magazine", "mgz"},
	{"model/vnd.vtu", "vtu"},
	{"application/vnd.anser-web-funds-transfer-initiation", "fti"},
	{"application/x-vpeg005", "vpg"},
	{"application/x-ltr", "ltr"},
	{"application/vnd.mophun.certificate", "mpc"},
	{"drawing/907", "907"},
	{"application/x-javascript", "ls"},
	{"application/vnd.yamaha.hv-voice", "hvp"},
	{"application/vnd.groove-help", "ghf"},
	{"application/x-director", "w3d"},
	{"text/vnd.curl.dcurl", "dcurl"},
	{"application/x-csi", "csi"},
	{"application/vnd.yamaha.openscoreformat.osfpvg+xml", "osfpvg"},
	{"application/vnd.mobius.dis", "dis"},
	{"application/vnd.ibm.secure-container", "sc"},
	{"application/x-tex-tfm", "tfm"},
	{"application/xcap-diff+xml", "xdf"},
	{"application/vnd.ms-powerpoint.presentation.macroenabled.12", "pptm"},
	{"image/g3fax", "g3"},
	{"application/x-wk4", "wk4"},
	{"application/vnd.cosmocaller", "cmc"},
	{"application/vnd.zul", "zirz"},
	{"image/vnd.ms-modi", "mdi"},
	{"application/vnd.epson.salt", "slt"},
	{"audio/x-mei-aac", "acp"},
	{"application/vnd.lotus-screencam", "scm"},
	{"model/vrml", "wrl"},
	{"application/vnd.fluxtime.clip", "ftc"},
	{"application/x-ace-compressed", "ace"},
	{"application/vnd.hp-pclxl", "pclxl"},
	{"application/x-dtbresource+xml", "res"},
	{"application/vnd.rn-rsml", "rsml"},
	{"application/vnd.svd", "svd"},
	{"image/vnd.net-fpx", "npx"},
	{"application/vnd.shana.informed.formtemplate", "itp"},
	{"application/vnd.mediastation.cdkey", "cdkey"},
	{"application/vnd.tmobile-livetv", "tmo"},
	{"application/ssdl+xml", "ssdl"},
	{"application/vnd.ms-works", "wps"},
	{"application/vnd.solent.sdkm+xml", "sdkm"},
	{"application/vnd.3m.post-it-notes", "pwn"},
	{"application/vnd.pocketlearn", "plf"},
	{"drawing/x-slk", "slk"},
	{"video/vnd.vivo", "viv"},
	{"application/vnd.mobius.txf", "txf"},
	{"application/vnd.blueice.multipass", "mpm"},
	{"application/x-pkcs7-certificates", "spc"},
	{"application/vnd.epson.msf", "msf"},
	{"application/vnd.dece.ttml+xml", "uvvt"},
	{"application/vnd.nitf", "ntf"},
	{"image/vnd.ms-photo", "wdp"},
	{"application/sbml+xml", "sbml"},
	{"application/metalink+xml", "metalink"},
	{"application/pkcs10", "p10"},
	{"application/EDIFACT", "edi"},
	{"application/vnd.noblenet-web", "nnw"},
	{"audio/vnd.dts", "dts"},
	{"application/lost+xml", "lostxml"},
	{"application/vnd.fujixerox.ddd", "ddd"},
	{"application/x-wkq", "wkq"},
	{"application/vnd.acucobol", "acu"},
	{"image/vnd.fastbidsheet", "fbs"},
	{"application/x-gbr", "gbr"},
	{"application/vnd.rn-rn_music_package", "rmp"},
	{"application/srgs", "gram"},
	{"application/vnd.oasis.opendocument.image-template", "oti"},
	{"application/vnd.adobe.xdp", "xdp"},
	{"text/x-uuencode", "uu"},
	{"application/vnd.enliven", "nml"},
	{"application/x-perl", "pl"},
	{"application/x-c90", "c90"},
	{"application/cu-seeme", "cu"},
	{"application/x-wr1", "wr1"},
	{"application/vnd.fdsn.seed", "seed"},
	{"text/x-sfv", "sfv"},
	{"application/mediaservercontrol+xml", "mscml"},
	{"audio/s3m", "s3m"},
	{"application/vnd.frogans.ltf", "ltf"},
	{"application/dssc+xml", "xdssc"},
	{"application/vnd.hp-hpid", "hpid"},
	{"text/vnd.curl", "curl"},
	{"application/omdoc+xml", "omdoc"},
	{"application/x-mmxp", "mxp"},
	{"application/oebps-package+xml", "opf"},
	{"application/vnd.oasis.opendocument.chart-template", "otc"},
	{"application/vnd.ms-powerpoint.slide.macroenabled.12", "sldm"},
	{"application/vnd.ms-excel.sheet.macroenabled.12", "xlsm"},
	{"application/vnd.genomatix.tuxedo", "txd"},
	{"application/vnd.pawaafile", "paw"},
	{"text/x-nfo", "nfo"},
	{"application/vnd.dpgraph", "dpg"},
	{"application/vnd.ms-word.document.macroenabled.12", "docm"},
	{"application/vnd.crick.clicker.palette", "clkp"},
	{"application/x-img", "img"},
	{"application/ssml+xml", "ssml"},
	{"application/vnd.groove-tool-message", "gtm"},
	{"application/x-tgif", "obj"},
	{"application/x-sat", "sat"},
	{"application/vnd.ms-fontobject", "eot"},
	{"application/vnd.syncml+xml", "xsm"},
	{"application/vnd.epson.quickanime", "qam"},
	{"application/vnd.uoml+xml", "uoml"},
	{"video/mp4", "mpg4"},
	{"application/xaml+xml", "xaml"},
	{"application/vnd.shana.informed.interchange", "iif"},
	{"application/xml-dtd", "dtd"},
	{"text/vnd.curl.mcurl", "mcurl"},
	{"application/x-sh", "sh"},
	{"application/vnd.kde.kivio", "flw"},
	{"chemical/x-cml", "cml"},
	{"application/x-msdownload", "exe"},
	{"application/x-plt", "plt"},
	{"application/set-payment-initiation", "setpay"},
	{"application/vnd.spotfire.sfs", "sfs"},
	{"application/x-wb3", "wb3"},
	{"application/x-sql", "sql"},
	{"application/applixware", "aw"},
	{"application/vnd.wap.wmlc", "wmlc"},
	{"application/vnd.syncml.dm+wbxml", "bdm"},
	{"chemical/x-cmdf", "cmdf"},
	{"audio/x-musicnet-download", "mnd"},
	{"video/jpeg", "jpgv"},
	{"application/x-mscardfile", "crd"},
	{"application/font-tdpfr", "pfr"},
	{"application/x-research-info-systems", "ris"},
	{"chemical/x-cif", "cif"},
	{"application/vnd.groove-vcard", "vcg"},
	{"application/vnd.cluetrust.cartomobile-config", "c11amc"},
	{"image/fax", "fax"},
	{"application/vnd.adobe.xfdf", "xfdf"},
	{"application/x-prt", "prt"},
	{"application/vnd.iccprofile", "icm"},
	{"application/vnd.fsc.weblaunch", "fsc"},
	{"model/x3d+binary", "x3dbz"},
	{"application/rsd+xml", "rsd"},
	{"application/patch-ops-error+xml", "xer"},
	{"application/vnd.ufdl", "ufdl"},
	{"application/vnd.ms-wpl", "wpl"},
	{"image/vnd.fujixerox.edmics-rlc", "rlc"},
	{"application/x-dib", "dib"},
	{"application/x-wp6", "wp6"},
	{"application/x-bzip2", "bz2"},
	{"application/vnd.intercon.formnet", "xpx"},
	{"application/vnd.ms-ims", "ims"},
	{"application/vnd.visio", "vtx"},
	{"application/postscript", "eps"},
	{"application/vnd.realvnc.bed", "bed"},
	{"application/x-cot", "cot"},
	{"text/webviewhtml", "htt"},
	{"application/vnd.osgeo.mapguide.package", "mgp"},
	{"application/vnd.adobe.rmf", "rmf"},
	{"application/vnd.3gpp2.tcap", "tcap"},
	{"application/vnd.airzip.filesecure.azf", "azf"},
	{"application/x-authorware-map", "aam"},
	{"application/x-zmachine", "z8"},
	{"model/x3d+vrml", "x3dvz"},
	{"application/vnd.ms-artgalry", "cil"},
	{"text/vnd.wap.wmlscript", "wmls"},
	{"image/vnd.rn-realpix", "rp"},
	{"image/vnd.fst", "fst"},
	{"application/vnd.sus-calendar", "susp"},
	{"application/vnd.criticaltools.wbs+xml", "wbs"},
	{"application/vnd.las.las+xml", "lasxml"},
	{"application/rpki-roa", "roa"},
	{"application/scvp-vp-request", "spq"},
	{"application/vnd.nokia.n-gage.symbian.install", "n-gage"},
	{"application/ogg", "ogx"},
	{"application/srgs+xml", "grxml"},
	{"application/pskc+xml", "pskcxml"},
	{"application/vnd.xara", "xar"},
	{"application/vnd.triscape.mxs", "mxs"},
	{"application/vnd.olpc-sugar", "xo"},
	{"text/vnd.in3d.3dml", "3dml"},
	{"application/vnd.fujitsu.oasys2", "oa2"},
	{"application/prs.cww", "cww"},
	{"application/vnd.frogans.fnc", "fnc"},
	{"application/resource-lists-diff+xml", "rld"},
	{"application/vnd.medcalcdata", "mc1"},
	{"application/hyperstudio", "stk"},
	{"application/vnd.smart.teacher", "teacher"},
	{"application/x-gca-compressed", "gca"},
	{"application/vnd.osgi.dp", "dp"},
	{"message/rfc822", "nws"},
	{"application/x-smk", "smk"},
	{"application/vnd.amiga.ami", "ami"},
	{"text/vnd.fly", "fly"},
	{"application/x-cals", "cal"},
	{"audio/adpcm", "adp"},
	{"application/vnd.yamaha.openscoreformat", "osf"},
	{"application/vnd.quark.quarkxpress", "qxt"},
	{"video/vnd.dece.mobile", "uvvm"},
	{"text/x-opml", "opml"},
	{"application/ecmascript", "ecma"},
	{"video/x-mpg", "mpa"},
	{"application/x-cit", "cit"},
	{"application/vnd.hp-hpgl", "hpgl"},
	{"application/vnd.recordare.musicxml+xml", "musicxml"},
	{"application/vnd.stepmania.package", "smzip"},
	{"application/vnd.ahead.space", "ahead"},
	{"application/cdmi-capability", "cdmia"},
	{"application/x-stuffitx", "sitx"},
	{"application/xproc+xml", "xpl"},
	{"application/x-906", "906"},
	{"application/x-pgl", "pgl"},
	{"application/x-font-snf", "snf"},
	{"application/vnd.groove-tool-template", "tpl"},
	{"application/vnd.rn-realsystem-rmx", "rmx"},
	{"application/x-slb", "slb"},
	{"text/asp", "asp"},
	{"application/x-pkcs12", "pfx"},
	{"model/vnd.gtw", "gtw"},
	{"application/vnd.wqd", "wqd"},
	{"application/vnd.route66.link66+xml", "link66"},
	{"application/x-msmoney", "mny"},
	{"chemical/x-xyz", "xyz"},
	{"application/vnd.neurolanguage.nlu", "nlu"},
	{"application/x-hmr", "hmr"},
	{"application/vnd.mophun.application", "mpn"},
	{"application/vnd.noblenet-directory", "nnd"},
	{"application/xslt+xml", "xslt"},
	{"text/sgml", "sgml"},
	{"application/vnd.claymore", "cla"},
	{"application/x-envoy", "evy"},
	{"application/x-font-bdf", "bdf"},
	{"application/vnd.llamagraphics.life-balance.desktop", "lbd"},
	{"application/x-msterminal", "trm"},
	{"audio/x-matroska", "mka"},
	{"application/vnd.accpac.simply.aso", "aso"},
	{"application/vnd.rn-realplayer", "rnx"},
	{"application/vnd.lotus-approach", "apr"},
	{"application/vnd.dece.zip", "uvz"},
	{"application/x-conference", "nsc"},
	{"application/pkcs7-mime", "p7m"},
	{"application/vnd.webturbo", "wtb"},
	{"application/pkix-pkipath", "pkipath"},
	{"video/vnd.uvvu.mp4", "uvvu"},
	{"application/vnd.airzip.filesecure.azs", "azs"},
	{"application/x-wks", "wks"},
	{"audio/mp1", "mp1"},
	{"application/vnd.simtech-mindmapper", "twds"},
	{"application/winhlp", "hlp"},
	{"application/vnd.dvb.service", "svc"},
	{"application/vnd.mobius.msl", "msl"},
	{"application/xml", "xsl"},
	{"application/vnd.ibm.modcap", "listafp"},
	{"application/vnd.pg.format", "str"},
	{"application/vnd.uiq.theme", "utz"},
	{"application/vnd.fujitsu.oasysgp", "fg5"},
	{"application/x-eva", "eva"},
	{"audio/ogg", "spx"},
	{"application/vnd.noblenet-sealer", "nns"},
	{"application/vnd.wap.wmlscriptc", "wmlsc"},
	{"application/x-dcx", "dcx"},
	{"application/vnd.hp-jlyt", "jlt"},
	{"application/vnd.kodak-descriptor", "sse"},
	{"image/vnd.fujixerox.edmics-mmr", "mmr"},
	{"audio/mp4", "mp4a"},
	{"application/vnd.lotus-notes", "nsf"},
	{"application/vnd.adobe.xfd", "xfd"},
	{"application/streamingmedia", "ssm"},
	{"application/vnd.fujixerox.docuworks", "xdw"},
	{"video/vnd.dece.pd", "uvvp"},
	{"application/x-red", "red"},
	{"application/vnd.antix.game-component", "atx"},
	{"application/ccxml+xml", "ccxml"},
	{"application/x-freearc", "arc"},
	{"application/x-silverlight-app", "xap"},
	{"application/vnd.adobe.air-application-installer-package+zip", "air"},
	{"audio/webm", "weba"},
	{"application/x-laplayer-reg", "lar"},
	{"application/x-wk3", "wk3"},
	{"text/turtle", "ttl"},
	{"application/x-emf", "emf"},
	{"application/vnd.denovo.fcselayout-link", "fe_launch"},
	{"application/x-authorware-seg", "aas"},
	{"application/vnd.kde.kontour", "kon"},
	{"application/vnd.fujitsu.oasys3", "oa3"},
	{"application/vnd.spotfire.dxp", "dxp"},
	{"application/vnd.gmx", "gmx"},
	{"video/x-smv", "smv"},
	{"application/x-wrk", "wrk"},
	{"application/x-wpd", "wpd"},
	{"application/vnd.kde.karbon", "karbon"},
	{"application/xspf+xml", "xspf"},
	{"video/x-ivf", "IVF"},
	{"image/vnd.dxf", "dxf"},
	{"application/vnd.tcpdump.pcap", "pcap"},
	{"application/vnd.ms-xpsdocument", "xps"},
	{"application/x-chat", "chat"},
	{"application/exi", "exi"},
	{"model/vnd.collada+xml", "dae"},
	{"application/vnd.kahootz", "ktz"},
	{"application/vnd.apple.mpegurl", "m3u8"},
	{"application/x-tdf", "tdf"},
	{"text/vcard", "vcard"},
	{"application/vnd.fujitsu.oasysprs", "bh2"},
	{"application/vnd.nokia.radio-presets", "rpss"},
	{"application/vnd.palm", "pqa"},
	{"application/vnd.kde.kformula", "kfo"},
	{"application/vnd.amazon.ebook", "azw"},
	{"audio/silk", "sil"},
	{"application/vnd.stepmania.stepchart", "sm"},
	{"application/vnd.rn-realsystem-rjs", "rjs"},
	{"application/vnd.ds-keypoint", "kpxx"},
	{"video/vnd.rn-realvideo", "rv"},
	{"application/atomsvc+xml", "atomsvc"},
	{"application/x-java-jnlp-file", "jnlp"},
	{"application/mathml+xml", "mathml"},
	{"application/json", "json"},
	{"application/vnd.dreamfactory", "dfac"},
	{"image/pnetvue", "net"},
	{"application/vnd.ctc-posml", "pml"},
	{"application/vnd.vsf", "vsf"},
	{"application/smil", "smil"},
	{"application/wspolicy+xml", "wspolicy"},
	{"application/cdmi-container", "cdmic"},
	{"application/oxps", "oxps"},
	{"application/x-cel", "cel"},
	{"application/vnd.ibm.rights-management", "irm"},
	{"application/vnd.mynfc", "taglet"},
	{"application/marc", "mrc"},
	{"application/onenote", "onetoc2"},
	{"video/mj2", "mjp2"},
	{"application/pkix-cert", "cer"},
	{"application/x-g4l", "cg4"},
	{"application/inkml+xml", "inkml"},
	{"application/vnd.jam", "jam"},
	{"application/vnd.grafeq", "gqs"},
	{"text/scriptlet", "wsc"},
	{"application/x-hpl", "hpl"},
	{"application/x-glulx", "ulx"},
	{"video/x-matroska", "mkv"},
	{"application/vnd.yamaha.hv-dic", "hvd"},
	{"application/vnd.trueapp", "tra"},
	{"application/vnd.crick.clicker", "clkx"},
	{"application/vnd.eszigno3+xml", "et3"},
	{"application/vnd.rig.cryptonote", "cryptonote"},
	{"application/x-tga", "tga"},
	{"application/x-gp4", "gp4"},
	{"video/mpg", "mpv"},
	{"application/vnd.ms-excel.addin.macroenabled.12", "xlam"},
	{"application/vnd.immervision-ivu", "ivu"},
	{"application/vnd.curl.car", "car"},
	{"application/x-mil", "mil"},
	{"application/x-nrf", "nrf"},
	{"application/davmount+xml", "davmount"},
	{"application/vnd.oma.dd2+xml", "dd2"},
	{"text/vnd.rn-realtext3d", "r3t"},
	{",	message/rfc822", "mhtml"},
	{"application/pgp-signature", "sig"},
	{"application/x-xlw", "xlw"},
	{"image/vnd.dwg", "dwg"},
	{"application/vnd.contact.cmsg", "cdbcmsg"},
	{"application/vnd.audiograph", "aep"},
	{"application/vnd.clonk.c4group", "c4u"},
	{"application/vnd.groove-account", "gac"},
	{"application/vnd.ms-powerpoint.slideshow.macroenabled.12", "ppsm"},
	{"application/vnd.apple.installer+xml", "mpkg"},
	{"application/x-sld", "sld"},
	{"chemical/x-csml", "csml"},
	{"text/vnd.graphviz", "gv"},
	{"application/metalink4+xml", "meta4"},
	{"application/x-wmf", "wmf"},
	{"application/vnd.macports.portpkg", "portpkg"},
	{"application/vnd.ms-lrm", "lrm"},
	{"application/x-nzb", "nzb"},
	{"application/gxf", "gxf"},
	{"application/vnd.recordare.musicxml", "mxl"},
	{"audio/vnd.rip", "rip"},
	{"application/pkix-attr-cert", "ac"},
	{"application/dssc+der", "dssc"},
	{"application/xv+xml", "xvml"},
	{"application/msword", "wiz"},
	{"text/uri-list", "urls"},
	{"application/vnd.ibm.minipay", "mpy"},
	{"audio/vnd.nuera.ecelp4800", "ecelp4800"},
	{"application/vnd.dece.unspecified", "uvx"},
	{"audio/vnd.dece.audio", "uvva"},
	{"application/vnd.joost.joda-archive", "joda"},
	{"application/sparql-results+xml", "srx"},
	{"application/vnd.semd", "semd"},
	{"application/vnd.trid.tpt", "tpt"},
	{"text/vnd.rn-realtext", "rt"},
	{"audio/xm", "xm"},
	{"application/vnd.ezpix-package", "ez3"},
	{"application/vnd.vcx", "vcx"},
	{"application/vnd.geometry-explorer", "gre"},
	{"application/scvp-vp-response", "spp"},
	{"application/x-wpg", "wpg"},
	{"application/x-xz", "xz"},
	{"application/x-pc5", "pc5"},
	{"application/vnd.ms-excel.sheet.binary.macroenabled.12", "xlsb"},
	{"application/vnd.rn-realmedia-vbr", "rmvb"},
	{"text/vnd.sun.j2me.app-descriptor", "jad"},
	{"application/vnd.mobius.plc", "plc"},
	{"application/rls-services+xml", "rs"},
	{"application/x-install-instructions", "install"},
	{"application/sru+xml", "sru"},
	{"application/x-hgl", "hgl"},
	{"application/atomcat+xml", "atomcat"},
	{"application/vnd.visionary", "vis"},
	{"application/x-font-ttf", "ttf"},
	{"application/vnd.cups-ppd", "ppd"},
	{"audio/x-liquid-file", "la1"},
	{"application/vnd.dynageo", "geo"},
	{"application/tei+xml", "teicorpus"},
	{"application/vnd.wt.stf", "stf"},
	{"application/vnd.mfer", "mwf"},
	{"application/vnd.yamaha.smaf-phrase", "spf"},
	{"application/emma+xml", "emma"},
	{"video/vnd.dece.sd", "uvvs"},
	{"application/vnd.chipnuts.karaoke-mmd", "mmd"},
	{"application/vnd.sailingtracker.track", "st"},
	{"application/vnd.crick.clicker.template", "clkt"},
	{"application/vnd.openofficeorg.extension", "oxt"},
	{"application/vnd.yamaha.hv-script", "hvs"},
	{"application/vnd.ms-officetheme", "thmx"},
	{"application/vnd.jisp", "jisp"},
	{"application/vnd.isac.fcs", "fcs"},
	{"application/vnd.oasis.opendocument.presentation-template", "otp"},
	{"application/vnd.llamagraphics.life-balance.exchange+xml", "lbe"},
	{"application/x-pcl", "pcl"},
	{"application/x-vda", "vda"},
	{"application/x-xliff+xml", "xlf"},
	{"application/vnd.aristanetworks.swi", "swi"},
	{"application/x-font-otf", "otf"},
	{"application/vnd.intergeo", "i2g"},
	{"image/vnd.fpx", "fpx"},
	{"application/marcxml+xml", "mrcx"},
	{"application/x-vst", "vst"},
	{"application/vnd.epson.esf", "esf"},
	{"application/x-icb", "icb"},
	{"application/vnd.adobe.workflow", "awf"},
	{"application/x-icq", "uin"},
	{"application/x-pci", "pci"},
	{"text/vnd.wap.wml", "wml"},
	{"video/jpm", "jpm"},
	{"application/x-subrip", "srt"},
	{"audio/x-liquid-secure", "lavs"},
	{"application/x-dgc-compressed", "dgc"},
	{"application/yang", "yang"},
	{"application/vnd.geonext", "gxt"},
	{"application/mbox", "mbox"},
	{"application/vnd.handheld-entertainment+xml", "zmm"},
	{"application/vnd.nokia.radio-preset", "rpst"},
	{"model/vnd.mts", "mts"},
	{"application/cdmi-object", "cdmio"},
	{"application/x-msclip", "clp"},
	{"video/vnd.dvb.file", "dvb"},
	{"text/troff", "tr"},
	{"application/vnd.geospace", "g3w"},
	{"image/prs.btif", "btif"},
	{"image/vnd.xiff", "xif"},
	{"application/x-dtbncx+xml", "ncx"},
	{"text/x-ms-odc", "odc"},
	{"application/x-epi", "epi"},
	{"application/resource-lists+xml", "rl"},
	{"application/vnd.intu.qbo", "qbo"},
	{"application/vnd.epson.ssf", "ssf"},
	{"application/x-anv", "anv"},
	{"application/epub+zip", "epub"},
	{"application/vnd.ms-htmlhelp", "chm"},
	{"application/vnd.3gpp.pic-bw-small", "psb"},
	{"audio/x-caf", "caf"},
	{"text/asa", "asa"},
	{"application/vnd.americandynamics.acc", "acc"},
	{"text/calendar", "ifb"},
	{"application/vnd.jcp.javame.midlet-rms", "rms"},
	{"video/vnd.ms-playready.media.pyv", "pyv"},
	{"application/vnd.igloader", "igl"},
	{"application/gml+xml", "gml"},
	{"application/vnd.ecowin.chart", "mag"},
	{"application/vnd.ipunplugged.rcprofile", "rcprofile"},
	{"application/thraud+xml", "tfi"},
	{"application/rat-file", "rat"},
	{"application/mxf", "mxf"},
	{"application/vnd.lotus-wordpro", "lwp"},
	{"audio/x-pn-realaudio", "rmm"},
	{"model/vnd.gdl", "gdl"},
	{"application/vnd.ms-powerpoint.template.macroenabled.12", "potm"},
	{"application/pkcs7-signature", "p7s"},
	{"application/vnd.muvee.style", "msty"},
	{"application/vnd.micrografx.igx", "igx"},
	{"application/vnd.hal+xml", "hal"},
	{"audio/vnd.nuera.ecelp7470", "ecelp7470"},
	{"application/vnd.xfdl", "xfdl"},
	{"application/vnd.lotus-freelance", "pre"},
	{"application/x-cmp", "cmp"},
	{"video/x-mpeg", "mps"},
	{"application/vnd.adobe.edn", "edn"},
	{"audio/vnd.digital-winds", "eol"},
	{"application/x-cmx", "cmx"},
	{"application/x-ws", "ws2"},
	{"application/x-cgm", "cgm"},
	{"application/vnd.powerbuilder6", "pbd"},
	{"application/mets+xml", "mets"},
	{"application/vnd.curl.pcurl", "pcurl"},
	{"application/x-iff", "iff"},
	{"application/vnd.dvb.ait", "ait"},
	{"application/x-ptn", "ptn"},
	{"application/x-wri", "wri"},
	{"application/x-ebx", "etd"},
	{"application/vnd.previewsystems.box", "box"},
	{"application/vnd.chemdraw+xml", "cdxml"},
	{"video/x-f4v", "f4v"},
	{"application/x-gramps-xml", "gramps"},
	{"application/vnd.hbci", "hbci"},
	{"application/docbook+xml", "dbk"},
	{"application/x-msschedule", "scd"},
	{"application/vnd.pvi.ptid1", "ptid"},
	{"application/vnd.adobe.fxp", "fxpl"},
	{"application/vnd.mobius.mqy", "mqy"},
	{"application/vnd.shana.informed.package", "ipk"},
	{"application/mp21", "mp21"},
	{"application/vnd.wolfram.player", "nbp"},
	{"application/vnd.immervision-ivp", "ivp"},
	{"chemical/x-cdx", "cdx"},
	{"application/x-authorware-bin", "x32"},
	{"image/webp", "webp"},
	{"application/gzip", "gzip"},
	{"audio/vnd.nuera.ecelp9600", "ecelp9600"},
	{"text/vnd.in3d.spot", "spot"},
	{"application/vnd.fdf", "fdf"},
	{"video/vnd.dece.hd", "uvvh"},
	{"application/x-cut", "cut"},
	{"application/vnd.openxmlformats-officedocument.presentationml.slide", "sldx"},
	{"video/x-ms-vob", "vob"},
	{"image/x-3ds", "3ds"},
	{"application/x-mi", "mi"},
	{"application/vnd.groove-injector", "grv"},
	{"application/mp4", "mp4s"},
	{"model/x3d+xml", "x3dz"},
	{"application/x-x_b", "x_b"},
	{"application/vnd.oasis.opendocument.presentation", "odp"},
	{"application/x-gl2", "gl2"},
	{"application/x-font-type1", "pfm"},
	{"application/vnd.ms-pki.certstore", "sst"},
	{"application/vnd.mfmp", "mfm"},
	{"application/vnd.novadigm.ext", "ext"},
	{"application/x-bot", "bot"},
	{"application/vnd.umajin", "umj"},
	{"application/vnd.ms-word.template.macroenabled.12", "dotm"},
	{"application/vnd.3gpp.pic-bw-var", "pvb"},
	{"application/x-out", "out"},
	{"application/x-pr", "pr"},
	{"text/prs.lines.tag", "dsc"},
}
